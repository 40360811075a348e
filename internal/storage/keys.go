package storage

// Keys of the persisted documents. Each key holds one JSON document.
const (
	// KeyRecords holds the category -> records mapping
	KeyRecords = "drfriend_records"

	// KeyTrash holds the newest-first list of trashed records
	KeyTrash = "drfriend_trash"

	// KeyProfile holds the user profile
	KeyProfile = "drfriend_profile"
)
