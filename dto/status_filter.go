package dto

import (
	"github.com/nusava/nusava-backend/models"
	"gorm.io/gorm"
)

// StatusFilterKind distinguishes the three ways a listing request can
// constrain status. "Absent" and the explicit "All" sentinel are different
// cases: absent hides DRAFT and ARCHIVED, "All" hides nothing.
type StatusFilterKind int

const (
	// StatusUnspecified means no status parameter was supplied; the default
	// listing excludes DRAFT and ARCHIVED properties.
	StatusUnspecified StatusFilterKind = iota
	// StatusShowAll means the caller passed the "All" sentinel; no status
	// restriction applies, drafts and archived listings included.
	StatusShowAll
	// StatusExact restricts to a single explicit status value.
	StatusExact
)

// StatusAllSentinel is the query value that disables the default visibility rule.
const StatusAllSentinel = "All"

// StatusFilter is the parsed status constraint of a listing request.
type StatusFilter struct {
	Kind   StatusFilterKind
	Status models.PropertyStatus
}

// ParseStatusFilter maps the raw status query parameter to a StatusFilter.
func ParseStatusFilter(raw string) StatusFilter {
	switch raw {
	case "":
		return StatusFilter{Kind: StatusUnspecified}
	case StatusAllSentinel:
		return StatusFilter{Kind: StatusShowAll}
	default:
		return StatusFilter{Kind: StatusExact, Status: models.PropertyStatus(raw)}
	}
}

// Matches reports whether a property with the given status is visible
// under this filter.
func (f StatusFilter) Matches(status models.PropertyStatus) bool {
	switch f.Kind {
	case StatusShowAll:
		return true
	case StatusExact:
		return status == f.Status
	default:
		return status != models.PropertyStatusDraft && status != models.PropertyStatusArchived
	}
}

// Scope returns a GORM scope applying the same predicate in SQL.
func (f StatusFilter) Scope() func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		switch f.Kind {
		case StatusShowAll:
			return db
		case StatusExact:
			return db.Where("status = ?", f.Status)
		default:
			return db.Where("status NOT IN ?", []models.PropertyStatus{
				models.PropertyStatusDraft,
				models.PropertyStatusArchived,
			})
		}
	}
}
