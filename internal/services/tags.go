package services

import (
	"strings"
	"time"

	"github.com/ruok-app/ruok-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Tag tables the resolver operates on.
const (
	activityTagTable = "activity_tags"
	placeTagTable    = "place_tags"
	peopleTagTable   = "people_tags"
)

// NormalizeTag lowercases and trims a raw label. Internal whitespace and
// punctuation are left alone; emotion titles, by contrast, are matched
// exactly with no normalization at all. Both behaviors are load-bearing
// for existing data.
func NormalizeTag(raw string) string {
	return strings.TrimSpace(strings.ToLower(raw))
}

// ResolveActivityTag maps a free-text activity label to the owner's tag
// id, creating the tag if absent.
func ResolveActivityTag(db *gorm.DB, ownerUserID uint64, raw string) (uint64, error) {
	return resolveTag(db, activityTagTable, ownerUserID, raw)
}

// ResolvePlaceTag maps a free-text place label to the owner's tag id,
// creating the tag if absent.
func ResolvePlaceTag(db *gorm.DB, ownerUserID uint64, raw string) (uint64, error) {
	return resolveTag(db, placeTagTable, ownerUserID, raw)
}

// ResolvePeopleTag maps a free-text people label to the owner's tag id,
// creating the tag if absent.
func ResolvePeopleTag(db *gorm.DB, ownerUserID uint64, raw string) (uint64, error) {
	return resolveTag(db, peopleTagTable, ownerUserID, raw)
}

// resolveTag is the find-or-create shared by the three tag kinds. The
// insert goes through ON CONFLICT DO NOTHING against the (user_id,
// title) unique index, so two concurrent resolves of the same new label
// both land on the single surviving row.
func resolveTag(db *gorm.DB, table string, ownerUserID uint64, raw string) (uint64, error) {
	title := NormalizeTag(raw)

	now := time.Now().UTC()
	if err := db.Table(table).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(map[string]interface{}{
			"user_id":    ownerUserID,
			"title":      title,
			"created_at": now,
			"updated_at": now,
		}).Error; err != nil {
		return 0, err
	}

	var id uint64
	row := db.Table(table).
		Select("id").
		Where("user_id = ? AND title = ?", ownerUserID, title).
		Row()
	if err := row.Scan(&id); err != nil {
		return 0, err
	}

	return id, nil
}

// ListActivityTags returns all activity tags owned by the user.
func ListActivityTags(db *gorm.DB, ownerUserID uint64) ([]models.ActivityTag, error) {
	var tags []models.ActivityTag
	if err := db.Where("user_id = ?", ownerUserID).Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

// ListPlaceTags returns all place tags owned by the user.
func ListPlaceTags(db *gorm.DB, ownerUserID uint64) ([]models.PlaceTag, error) {
	var tags []models.PlaceTag
	if err := db.Where("user_id = ?", ownerUserID).Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

// ListPeopleTags returns all people tags owned by the user.
func ListPeopleTags(db *gorm.DB, ownerUserID uint64) ([]models.PeopleTag, error) {
	var tags []models.PeopleTag
	if err := db.Where("user_id = ?", ownerUserID).Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}
