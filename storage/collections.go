package storage

// Remote collection names
const (
	CollectionStudents      = "students"
	CollectionCompetitions  = "competitions"
	CollectionAnnouncements = "announcements"
	CollectionGallery       = "gallery"
	CollectionFestivalData  = "festivalData"
	CollectionAdmins        = "admins"
)

// Local cache keys, one JSON blob per logical collection
const (
	KeyStudents      = "festival_students"
	KeyCompetitions  = "festival_competitions"
	KeyAnnouncements = "festival_announcements"
	KeyGallery       = "festival_gallery"
	KeyFestivalData  = "festival_data"
	KeyAdmins        = "festival_admins"
	KeyAdminSession  = "festival_current_admin"
)

// Collections lists every synchronized collection in migration order
var Collections = []string{
	CollectionStudents,
	CollectionCompetitions,
	CollectionAnnouncements,
	CollectionGallery,
	CollectionFestivalData,
	CollectionAdmins,
}

var cacheKeys = map[string]string{
	CollectionStudents:      KeyStudents,
	CollectionCompetitions:  KeyCompetitions,
	CollectionAnnouncements: KeyAnnouncements,
	CollectionGallery:       KeyGallery,
	CollectionFestivalData:  KeyFestivalData,
	CollectionAdmins:        KeyAdmins,
}

// CacheKey returns the local cache key holding a collection's blob
func CacheKey(collection string) string {
	return cacheKeys[collection]
}
