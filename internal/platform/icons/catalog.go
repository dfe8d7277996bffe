package icons

// ID identifies an icon independently of its artwork.
type ID string

const (
	IDPrevious     ID = "previous"
	IDNext         ID = "next"
	IDCommunity    ID = "community"
	IDExternalLink ID = "external_link"
	IDHeart        ID = "heart"
)
