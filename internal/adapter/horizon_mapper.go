package adapter

import (
	"time"

	"github.com/MKhiriev/go-stellar-kit/models"
	hProtocol "github.com/stellar/go/protocols/horizon"
	"github.com/stellar/go/protocols/horizon/operations"
)

func transactionFromRecord(r hProtocol.Transaction) models.Transaction {
	return models.Transaction{
		Hash:          r.Hash,
		CreatedAt:     r.LedgerCloseTime.UTC().Format(time.RFC3339),
		Timestamp:     r.LedgerCloseTime.Unix(),
		SourceAccount: r.Account,
		FeeAccount:    r.FeeAccount,
		FeeCharged:    r.FeeCharged,
		Memo:          r.Memo,
		Ledger:        int64(r.Ledger),
		IsSuccessful:  r.Successful,
	}
}

func operationBase(b operations.Base) models.OperationBase {
	return models.OperationBase{
		ID:                    b.ID,
		PagingToken:           b.PT,
		TransactionSuccessful: b.TransactionSuccessful,
		SourceAccount:         b.SourceAccount,
		Type:                  b.Type,
		CreatedAt:             b.LedgerCloseTime.UTC().Format(time.RFC3339),
		TransactionHash:       b.TransactionHash,
	}
}

func operationFromRecord(record operations.Operation) models.Operation {
	switch op := record.(type) {
	case operations.CreateAccount:
		return createAccountFromRecord(op)
	case *operations.CreateAccount:
		return createAccountFromRecord(*op)
	case operations.Payment:
		return paymentFromRecord(op)
	case *operations.Payment:
		return paymentFromRecord(*op)
	default:
		return models.UnhandledOperation{OperationBase: models.OperationBase{
			ID:                    record.GetID(),
			PagingToken:           record.PagingToken(),
			TransactionSuccessful: record.IsTransactionSuccessful(),
			Type:                  record.GetType(),
			TransactionHash:       record.GetTransactionHash(),
		}}
	}
}

func createAccountFromRecord(op operations.CreateAccount) models.CreateAccountOperation {
	return models.CreateAccountOperation{
		OperationBase:   operationBase(op.Base),
		StartingBalance: op.StartingBalance,
		Funder:          op.Funder,
		Account:         op.Account,
	}
}

func paymentFromRecord(op operations.Payment) models.PaymentOperation {
	return models.PaymentOperation{
		OperationBase: operationBase(op.Base),
		AssetType:     op.Asset.Type,
		AssetCode:     op.Asset.Code,
		AssetIssuer:   op.Asset.Issuer,
		From:          op.From,
		To:            op.To,
		Amount:        op.Amount,
	}
}
