package catalog

import "github.com/abusaud/storefront/internal/domain"

// Default returns the shop's bundled menu
func Default() *Catalog {
	return MustNew([]domain.Product{
		{
			ID:          "dolma-250",
			Name:        "دولمة أبو السعود (ربع كيلو)",
			Price:       250,
			Description: "دولمة فستق محشية بعناية، طرية ومغلفة بالسمن البلدي وطعمها تقيل ومميز 💚✨",
			ImageRef:    "images/dolma.jpg",
		},
		{
			ID:          "pistachio-250",
			Name:        "بستاشيو أبو السعود (ربع كيلو)",
			Price:       300,
			Description: "شوكولاتة فاخرة محشية فستق كامل، طعم غني ومميز لعشاق البستاشيو 💚🍫",
			ImageRef:    "images/pistachio.jpg",
		},
	})
}
