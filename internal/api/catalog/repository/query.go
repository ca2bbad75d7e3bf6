package catalogRepository

const (
	queryCreateDestination = `
		INSERT INTO destinations (
			id,
			name,
			description,
			photo_url,
			country,
			created_at,
			updated_at
		) VALUES (
			:id,
			:name,
			:description,
			:photo_url,
			:country,
			:created_at,
			:updated_at
		)
	`

	queryGetDestinationByID = `
		SELECT
			id,
			name,
			description,
			photo_url,
			country,
			created_at,
			updated_at
		FROM destinations
		WHERE id = :id
	`

	queryGetDestinations = `
		SELECT
			id,
			name,
			description,
			photo_url,
			country,
			created_at,
			updated_at
		FROM destinations
		WHERE (:country = '' OR country = :country)
			AND (:name = '' OR name = :name)
		ORDER BY name ASC
	`

	queryCreatePackage = `
		INSERT INTO packages (
			id,
			agent_id,
			destination_id,
			name,
			duration,
			price,
			itinerary,
			max_travelers,
			contact_phone,
			images,
			created_at,
			updated_at
		) VALUES (
			:id,
			:agent_id,
			:destination_id,
			:name,
			:duration,
			:price,
			:itinerary,
			:max_travelers,
			:contact_phone,
			:images,
			:created_at,
			:updated_at
		)
	`

	selectPackages = `
		SELECT
			p.id,
			p.agent_id,
			p.destination_id,
			d.name AS destination_name,
			p.name,
			p.duration,
			p.price,
			p.itinerary,
			p.max_travelers,
			p.contact_phone,
			p.images,
			p.created_at,
			p.updated_at
		FROM packages p
		JOIN destinations d ON d.id = p.destination_id
	`

	queryGetPackageByID = selectPackages + `
		WHERE p.id = :id
	`

	queryGetPackages = selectPackages + `
		WHERE (:destination_id = '' OR CAST(p.destination_id AS TEXT) = :destination_id)
		ORDER BY p.created_at DESC
	`

	queryGetPackagesByAgent = selectPackages + `
		WHERE p.agent_id = :agent_id
		ORDER BY p.created_at DESC
	`
)
