package dto

type CartSource string

const (
	// CartSourceClientItems: lines came from the request payload and the
	// client-supplied totals are trusted as-is.
	CartSourceClientItems CartSource = "CLIENT_ITEMS"
	// CartSourcePersisted: lines came from the server-side cart and are
	// repriced against the catalog inside the checkout transaction.
	CartSourcePersisted CartSource = "PERSISTED_CART"
)

// PurchaseLine is one normalized line of a checkout. For persisted-cart
// lines UnitPrice, ProductName and ProductImageURL are zero values and
// get filled from the locked product row.
type PurchaseLine struct {
	ProductID       uint
	Quantity        int
	UnitPrice       float64
	ProductName     string
	ProductImageURL string
}

type ResolvedCart struct {
	Lines  []PurchaseLine
	Source CartSource
	UserID *uint
}
