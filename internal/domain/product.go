package domain

// Product type values for ProductRecord.Type
const (
	TypeWrappingPaper = "wrapping_paper"
	TypeRibbon        = "ribbon"
	TypeBox           = "box"
	TypeTag           = "tag"
	TypeBow           = "bow"
)

// ProductTypes lists every valid value for ProductRecord.Type
var ProductTypes = []string{TypeWrappingPaper, TypeRibbon, TypeBox, TypeTag, TypeBow}

// ProductRecord is the canonical structured record produced from one Amazon
// product page. Pointer fields are nullable. A nil PrintNames or Rolls slice
// marshals as JSON null and means "none stated"; a non-nil empty slice means
// "explicitly none".
type ProductRecord struct {
	ASIN        *string  `json:"asin"`
	Type        *string  `json:"type"`
	Title       *string  `json:"title"`
	Price       *float64 `json:"price"`
	Brand       *string  `json:"brand"`
	Description *string  `json:"description"`
	Size        *string  `json:"size"`
	Quantity    *float64 `json:"quantity"`
	Dimensions  *string  `json:"dimensions"`
	RollLength  *float64 `json:"rollLength"`
	RollWidth   *float64 `json:"rollWidth"`
	PrintNames  []string `json:"printNames"`
	Rolls       []Roll   `json:"rolls"`
	Thumbnail   *string  `json:"thumbnail"`
	Images      []string `json:"images"`
	URL         *string  `json:"url"`
}

// Roll is one physical wrapping-paper roll within a multi-roll pack.
// RollNumber is 1-based with no gaps. PairedRollNumber references another
// roll's RollNumber by value for reversible pairs; the pipeline never infers
// it, so it stays null unless the completion supplies it.
type Roll struct {
	RollNumber       int      `json:"rollNumber"`
	OnHand           float64  `json:"onHand"`
	MaxArea          float64  `json:"maxArea"`
	Image            *string  `json:"image"`
	PrintName        *string  `json:"printName"`
	HasReverseSide   bool     `json:"hasReverseSide"`
	PairedRollNumber *float64 `json:"pairedRollNumber"`
}
