package domain

type BuyerExporter interface {
	Export(buyers []*Buyer) (string, error)
}
