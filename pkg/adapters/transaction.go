package adapters

import (
	"github.com/shop-tools/sales-atlas/pkg/models/api"
	"github.com/shop-tools/sales-atlas/pkg/models/domain"
)

func MapTransactionDomainToApi(tx domain.Transaction) api.Transaction {
	return api.Transaction{
		Date:          tx.Date.Format(dayFormat),
		Price:         amountToApi(tx.Price),
		StaffName:     tx.StaffName,
		PaymentMethod: tx.PaymentMethod,
	}
}

func MapTransactionsDomainToApi(txs []domain.Transaction) []api.Transaction {
	out := make([]api.Transaction, 0, len(txs))
	for _, tx := range txs {
		out = append(out, MapTransactionDomainToApi(tx))
	}
	return out
}
