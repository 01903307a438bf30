package store

const (
	getLastLedgerSequence = `SELECT sequence FROM last_ledger_sequence WHERE id = 1;`

	saveLastLedgerSequence = `
		INSERT INTO last_ledger_sequence (id, sequence) VALUES (1, ?)
		ON CONFLICT(id) DO UPDATE SET sequence = MAX(sequence, excluded.sequence);`

	saveTransactionIfNotExists = `
		INSERT INTO transactions (
			hash,
			created_at,
			timestamp,
			source_account,
			fee_account,
			fee_charged,
			memo,
			ledger,
			is_successful
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(hash) DO NOTHING;`

	getTransaction = `
		SELECT
			hash,
			created_at,
			timestamp,
			source_account,
			fee_account,
			fee_charged,
			memo,
			ledger,
			is_successful
		FROM transactions
		WHERE hash = ?;`

	getAllTransactions = `
		SELECT
			hash,
			created_at,
			timestamp,
			source_account,
			fee_account,
			fee_charged,
			memo,
			ledger,
			is_successful
		FROM transactions
		ORDER BY timestamp DESC, hash DESC;`

	saveCreateAccountOperationIfNotExists = `
		INSERT INTO create_account_operations (
			id,
			paging_token,
			transaction_successful,
			source_account,
			type,
			created_at,
			transaction_hash,
			starting_balance,
			funder,
			account
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING;`

	getCreateAccountOperations = `
		SELECT
			id,
			paging_token,
			transaction_successful,
			source_account,
			type,
			created_at,
			transaction_hash,
			starting_balance,
			funder,
			account
		FROM create_account_operations
		WHERE transaction_hash = ?
		ORDER BY CAST(id AS INTEGER);`

	savePaymentOperationIfNotExists = `
		INSERT INTO payment_operations (
			id,
			paging_token,
			transaction_successful,
			source_account,
			type,
			created_at,
			transaction_hash,
			asset_type,
			asset_code,
			asset_issuer,
			from_account,
			to_account,
			amount
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING;`

	getPaymentOperations = `
		SELECT
			id,
			paging_token,
			transaction_successful,
			source_account,
			type,
			created_at,
			transaction_hash,
			asset_type,
			asset_code,
			asset_issuer,
			from_account,
			to_account,
			amount
		FROM payment_operations
		WHERE transaction_hash = ?
		ORDER BY CAST(id AS INTEGER);`

	saveTag = `INSERT OR REPLACE INTO transaction_tags (name, hash) VALUES (?, ?);`

	getTags = `SELECT name FROM transaction_tags WHERE hash = ? ORDER BY name;`
)

var (
	transactionColumns = []string{
		"tx.hash",
		"tx.created_at",
		"tx.timestamp",
		"tx.source_account",
		"tx.fee_account",
		"tx.fee_charged",
		"tx.memo",
		"tx.ledger",
		"tx.is_successful",
	}

	createAccountColumns = []string{
		"id",
		"paging_token",
		"transaction_successful",
		"source_account",
		"type",
		"created_at",
		"transaction_hash",
		"starting_balance",
		"funder",
		"account",
	}

	paymentColumns = []string{
		"id",
		"paging_token",
		"transaction_successful",
		"source_account",
		"type",
		"created_at",
		"transaction_hash",
		"asset_type",
		"asset_code",
		"asset_issuer",
		"from_account",
		"to_account",
		"amount",
	}
)
