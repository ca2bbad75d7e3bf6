package qrisRepository

const (
	queryCreateQris = `
		INSERT INTO qris (
			id,
			foto_qr_path,
			static_qris_string,
			dynamic_qris_string,
			fee_type,
			fee_value,
			created_at
		) VALUES (
			:id,
			:foto_qr_path,
			:static_qris_string,
			:dynamic_qris_string,
			:fee_type,
			:fee_value,
			:created_at
		)
	`

	queryGetQrisByID = `
		SELECT
			id,
			foto_qr_path,
			static_qris_string,
			dynamic_qris_string,
			fee_type,
			fee_value,
			created_at
		FROM qris
		WHERE id = :id
	`

	queryGetQrisByStaticString = `
		SELECT
			id,
			foto_qr_path,
			static_qris_string,
			dynamic_qris_string,
			fee_type,
			fee_value,
			created_at
		FROM qris
		WHERE static_qris_string = :static_qris_string
	`

	queryGetLatestQris = `
		SELECT
			id,
			foto_qr_path,
			static_qris_string,
			dynamic_qris_string,
			fee_type,
			fee_value,
			created_at
		FROM qris
		ORDER BY created_at DESC
		LIMIT 1
	`

	queryGetAllQris = `
		SELECT
			id,
			foto_qr_path,
			static_qris_string,
			dynamic_qris_string,
			fee_type,
			fee_value,
			created_at
		FROM qris
		ORDER BY created_at DESC
	`

	queryUpdateDynamicQris = `
		UPDATE qris
		SET dynamic_qris_string = :dynamic_qris_string
		WHERE id = :id
	`

	queryDeleteQris = `
		DELETE FROM qris
		WHERE id = :id
	`
)
