package domain

const (
	RequesterIDCtxKey    = "dl-requesterId"
	RequesterEmailCtxKey = "dl-requesterEmail"
	SessionIDCtxKey      = "dl-sessionId"
)

const (
	// DefaultInspirationTitle labels the weekly card when the editor
	// leaves the title empty.
	DefaultInspirationTitle = "Deli-verse Wednesday"

	// FooterBranding is pinned near the bottom of every rendered card.
	FooterBranding = "Deliciosa Frontyard Café"
)

// Storage folder names, keyed per content section.
const (
	FolderBanners      = "banner"
	FolderInspirations = "weekly-inspiration"
	FolderMenu         = "menu"
	FolderGallery      = "gallery"
	FolderPackages     = "packages"
)

// KnownFolder reports whether an upload folder name is one of the
// content sections. Uploads outside these are rejected.
func KnownFolder(name string) bool {
	switch name {
	case FolderBanners, FolderInspirations, FolderMenu, FolderGallery, FolderPackages:
		return true
	}
	return false
}
