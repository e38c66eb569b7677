package services

import (
	"errors"

	"github.com/ruok-app/ruok-api/internal/models"
	"github.com/ruok-app/ruok-api/internal/types"
	"gorm.io/gorm"
)

// CheckInInput is the payload for creating a check-in. Tag fields are
// raw labels; an empty label means "no tag".
type CheckInInput struct {
	Emotion     string `json:"emotion"`
	Description string `json:"description,omitempty"`
	ActivityTag string `json:"activityTag,omitempty"`
	PlaceTag    string `json:"placeTag,omitempty"`
	PeopleTag   string `json:"peopleTag,omitempty"`
}

// CheckInUpdateInput carries a partial update; nil fields are left
// untouched. Tag fields re-title the already-linked tag rather than
// resolving a new one.
type CheckInUpdateInput struct {
	Emotion     *string `json:"emotion,omitempty"`
	Description *string `json:"description,omitempty"`
	ActivityTag *string `json:"activityTag,omitempty"`
	PlaceTag    *string `json:"placeTag,omitempty"`
	PeopleTag   *string `json:"peopleTag,omitempty"`
}

// CreateCheckIn validates the emotion, resolves the optional tags, and
// persists the check-in for the owner. Tag rows created before a later
// failure persist; there is no compensating transaction.
func CreateCheckIn(db *gorm.DB, ownerUserID uint64, in CheckInInput) (*models.CheckIn, error) {
	// Emotion titles are canonical: exact match, no normalization.
	var emotion models.Emotion
	if err := db.Where("title = ?", in.Emotion).First(&emotion).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, types.ValidationError("Not a valid emotion")
		}
		return nil, err
	}

	var activityTagID, placeTagID, peopleTagID *uint64
	if in.ActivityTag != "" {
		id, err := ResolveActivityTag(db, ownerUserID, in.ActivityTag)
		if err != nil {
			return nil, err
		}
		activityTagID = &id
	}
	if in.PlaceTag != "" {
		id, err := ResolvePlaceTag(db, ownerUserID, in.PlaceTag)
		if err != nil {
			return nil, err
		}
		placeTagID = &id
	}
	if in.PeopleTag != "" {
		id, err := ResolvePeopleTag(db, ownerUserID, in.PeopleTag)
		if err != nil {
			return nil, err
		}
		peopleTagID = &id
	}

	checkIn := models.CheckIn{
		UserID:        ownerUserID,
		EmotionID:     emotion.ID,
		Description:   in.Description,
		ActivityTagID: activityTagID,
		PlaceTagID:    placeTagID,
		PeopleTagID:   peopleTagID,
	}
	if err := db.Create(&checkIn).Error; err != nil {
		return nil, err
	}

	return loadCheckInView(db, checkIn.ID)
}

// ListCheckIns returns all of the owner's check-ins with their emotion
// and tag references expanded.
func ListCheckIns(db *gorm.DB, ownerUserID uint64) ([]models.CheckIn, error) {
	var checkIns []models.CheckIn
	err := db.Preload("Emotion").
		Preload("ActivityTag").
		Preload("PlaceTag").
		Preload("PeopleTag").
		Where("user_id = ?", ownerUserID).
		Order("created_at DESC").
		Find(&checkIns).Error
	if err != nil {
		return nil, err
	}
	return checkIns, nil
}

// UpdateCheckIn applies a partial update to the owner's check-in. A
// check-in belonging to another user reports not-found.
func UpdateCheckIn(db *gorm.DB, ownerUserID, checkInID uint64, in CheckInUpdateInput) (*models.CheckIn, error) {
	var existing models.CheckIn
	if err := db.Where("id = ? AND user_id = ?", checkInID, ownerUserID).First(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, types.NotFoundError("Checkin not found for this user")
		}
		return nil, err
	}

	updates := map[string]interface{}{}
	var orphans []orphanTag

	// Re-title linked tags. When the user already owns a tag with the
	// new title, the check-in moves onto that row instead; the old row
	// is removed afterwards if nothing else references it.
	if in.ActivityTag != nil && existing.ActivityTagID != nil {
		newID, err := retitleTag(db, activityTagTable, ownerUserID, *existing.ActivityTagID, *in.ActivityTag)
		if err != nil {
			return nil, err
		}
		if newID != *existing.ActivityTagID {
			updates["activity_tag_id"] = newID
			orphans = append(orphans, orphanTag{activityTagTable, "activity_tag_id", *existing.ActivityTagID})
		}
	}
	if in.PlaceTag != nil && existing.PlaceTagID != nil {
		newID, err := retitleTag(db, placeTagTable, ownerUserID, *existing.PlaceTagID, *in.PlaceTag)
		if err != nil {
			return nil, err
		}
		if newID != *existing.PlaceTagID {
			updates["place_tag_id"] = newID
			orphans = append(orphans, orphanTag{placeTagTable, "place_tag_id", *existing.PlaceTagID})
		}
	}
	if in.PeopleTag != nil && existing.PeopleTagID != nil {
		newID, err := retitleTag(db, peopleTagTable, ownerUserID, *existing.PeopleTagID, *in.PeopleTag)
		if err != nil {
			return nil, err
		}
		if newID != *existing.PeopleTagID {
			updates["people_tag_id"] = newID
			orphans = append(orphans, orphanTag{peopleTagTable, "people_tag_id", *existing.PeopleTagID})
		}
	}

	if in.Description != nil {
		updates["description"] = *in.Description
	}
	if in.Emotion != nil {
		var emotion models.Emotion
		if err := db.Where("title = ?", *in.Emotion).First(&emotion).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, types.ValidationError("Invalid emotion")
			}
			return nil, err
		}
		updates["emotion_id"] = emotion.ID
	}

	if len(updates) > 0 {
		if err := db.Model(&models.CheckIn{}).Where("id = ?", checkInID).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	for _, o := range orphans {
		if err := dropOrphanTag(db, o); err != nil {
			return nil, err
		}
	}

	return loadCheckInView(db, checkInID)
}

// DeleteCheckIn removes the check-in scoped to (id, owner). A wrong
// owner reports not-found, not a permission error. Tags are never
// cascaded.
func DeleteCheckIn(db *gorm.DB, ownerUserID, checkInID uint64) (*models.CheckIn, error) {
	view, err := loadCheckInView(db, checkInID)
	if err != nil {
		return nil, err
	}
	if view == nil || view.UserID != ownerUserID {
		return nil, types.NotFoundError("Checkin not found for this user")
	}

	if err := db.Where("id = ? AND user_id = ?", checkInID, ownerUserID).
		Delete(&models.CheckIn{}).Error; err != nil {
		return nil, err
	}

	return view, nil
}

// loadCheckInView is the read-side projection: it expands emotion and
// tag references after a write instead of populating them during it.
func loadCheckInView(db *gorm.DB, checkInID uint64) (*models.CheckIn, error) {
	var checkIn models.CheckIn
	err := db.Preload("Emotion").
		Preload("ActivityTag").
		Preload("PlaceTag").
		Preload("PeopleTag").
		First(&checkIn, checkInID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, types.NotFoundError("Checkin not found for this user")
		}
		return nil, err
	}
	return &checkIn, nil
}

// retitleTag renames a linked tag, normalizing the new label. If the
// user already owns a tag with the new title, that row's id is returned
// so the caller can relink instead of colliding with the (user, title)
// unique index; otherwise the linked tag is renamed in place.
func retitleTag(db *gorm.DB, table string, ownerUserID, tagID uint64, raw string) (uint64, error) {
	title := NormalizeTag(raw)

	var ids []uint64
	err := db.Table(table).
		Where("user_id = ? AND title = ?", ownerUserID, title).
		Limit(1).
		Pluck("id", &ids).Error
	if err != nil {
		return 0, err
	}
	if len(ids) > 0 && ids[0] != tagID {
		return ids[0], nil
	}

	err = db.Table(table).
		Where("id = ? AND user_id = ?", tagID, ownerUserID).
		Update("title", title).Error
	if err != nil {
		return 0, err
	}
	return tagID, nil
}

// orphanTag identifies a tag row left behind by a merge.
type orphanTag struct {
	table  string
	column string
	tagID  uint64
}

// dropOrphanTag deletes a merged-away tag row once no check-in
// references it.
func dropOrphanTag(db *gorm.DB, o orphanTag) error {
	var refs int64
	err := db.Model(&models.CheckIn{}).
		Where(o.column+" = ?", o.tagID).
		Count(&refs).Error
	if err != nil {
		return err
	}
	if refs > 0 {
		return nil
	}
	return db.Exec("DELETE FROM "+o.table+" WHERE id = ?", o.tagID).Error
}
