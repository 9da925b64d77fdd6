package domain

// Picture holds the upload metadata for a product image. Path and URL are
// filled in after the original file has been stored in the object bucket.
type Picture struct {
	OriginalFile string `json:"-" bson:"original_file,omitempty"`
	Path         string `json:"-" bson:"path,omitempty"`
	URL          string `json:"url,omitempty" bson:"url,omitempty"`
}

// Product is a catalog record. Catalog entries are immutable once created
// except for the picture fields, which are set after an upload completes.
type Product struct {
	ID         string   `json:"_id"`
	Name       string   `json:"name"`
	Price      float64  `json:"price"`
	OldPrice   float64  `json:"oldPrice"`
	PictureURL string   `json:"pictureUrl,omitempty"`
	Picture    *Picture `json:"picture,omitempty"`
}

// Snapshot returns a copy of the product detached from the catalog record.
// Wishlist and cart entries embed snapshots, so later catalog edits never
// retroactively change what a user already saved.
func (p Product) Snapshot() Product {
	copy := p
	if p.Picture != nil {
		pic := *p.Picture
		copy.Picture = &pic
	}
	return copy
}
