package query

import "picboard/models"

// Visibility builds the access-control predicate for rows in the given
// table (which must have is_public and uploader_id columns). It is ANDed
// into every content and pool query; skipping it anywhere is a visibility
// leak, not a cosmetic bug.
//
//	anonymous  -> is_public
//	admin      -> nil (no restriction)
//	otherwise  -> is_public OR uploader_id = viewer
func Visibility(viewer *models.Identity, table string) Predicate {
	switch {
	case viewer == nil:
		return Compare{Column: table + ".is_public", Op: "=", Value: true}
	case viewer.IsAdmin:
		return nil
	default:
		return Or{
			Compare{Column: table + ".is_public", Op: "=", Value: true},
			Compare{Column: table + ".uploader_id", Op: "=", Value: viewer.ID},
		}
	}
}
