package tracker

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"liyu1981.xyz/glucose-tracker/pkg/common"
	"liyu1981.xyz/glucose-tracker/pkg/models"
)

func validateProfile(p *models.UserProfile) error {
	if strings.TrimSpace(p.Username) == "" {
		return common.NewError(common.ErrorTypeValidation, "INVALID_PROFILE", "username is required")
	}
	if p.TargetGlucoseMin <= 0 || p.TargetGlucoseMax <= p.TargetGlucoseMin {
		return common.NewError(common.ErrorTypeValidation, "INVALID_PROFILE",
			fmt.Sprintf("target range [%d, %d] is invalid", p.TargetGlucoseMin, p.TargetGlucoseMax))
	}
	return nil
}

func deactivateAll(tx *gorm.DB) error {
	return tx.Model(&models.UserProfile{}).
		Where("is_active = ?", true).
		Update("is_active", false).Error
}

func (t *Tracker) createProfile(ctx context.Context, input *models.UserProfile) (uint, error) {
	logger := common.GetCategoryLogger(common.LoggerNameTrackerCore, common.LoggerCategoryProfile)

	if err := validateProfile(input); err != nil {
		return 0, err
	}

	profile := models.UserProfile{
		Username:         strings.TrimSpace(input.Username),
		Age:              input.Age,
		TargetGlucoseMin: input.TargetGlucoseMin,
		TargetGlucoseMax: input.TargetGlucoseMax,
		IsActive:         true,
	}

	logger.Info("Received profile", zap.Reflect("profile", profile))

	err := t.Db.Conn.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.UserProfile{}).Where("username = ?", profile.Username).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return common.WithMessage(common.ErrUsernameTaken, fmt.Sprintf("username %q already exists", profile.Username))
		}
		if err := deactivateAll(tx); err != nil {
			return err
		}
		return tx.Create(&profile).Error
	})
	if err != nil {
		return 0, storageErr(err, "create profile")
	}
	t.publish(tableProfiles)

	input.ID = profile.ID
	input.IsActive = true
	logger.Info("Profile created and activated", zap.Reflect("profile", profile))
	return profile.ID, nil
}

func (t *Tracker) updateProfile(ctx context.Context, input *models.UserProfile) error {
	logger := common.GetCategoryLogger(common.LoggerNameTrackerCore, common.LoggerCategoryProfile)

	if input.ID == 0 {
		return common.ErrProfileNotFound
	}
	if err := validateProfile(input); err != nil {
		return err
	}

	username := strings.TrimSpace(input.Username)

	err := t.Db.Conn.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.UserProfile{}).
			Where("username = ? AND id <> ?", username, input.ID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return common.WithMessage(common.ErrUsernameTaken, fmt.Sprintf("username %q already exists", username))
		}

		// the active flag only moves through SetActiveUser and Logout
		result := tx.Model(&models.UserProfile{ID: input.ID}).
			Select("username", "age", "target_glucose_min", "target_glucose_max").
			Updates(models.UserProfile{
				Username:         username,
				Age:              input.Age,
				TargetGlucoseMin: input.TargetGlucoseMin,
				TargetGlucoseMax: input.TargetGlucoseMax,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return common.ErrProfileNotFound
		}
		return nil
	})
	if err != nil {
		return storageErr(err, "update profile")
	}

	logger.Info("Profile updated", zap.Uint("id", input.ID))
	return nil
}

func (t *Tracker) getProfile(ctx context.Context, id uint) (*models.UserProfile, error) {
	var profile models.UserProfile
	if err := t.Db.Conn.WithContext(ctx).First(&profile, id).Error; err != nil {
		return nil, findErr(err, common.ErrProfileNotFound, "get profile")
	}
	return &profile, nil
}

func (t *Tracker) getActiveProfile(ctx context.Context) (*models.UserProfile, error) {
	var profile models.UserProfile
	if err := t.Db.Conn.WithContext(ctx).Where("is_active = ?", true).First(&profile).Error; err != nil {
		return nil, findErr(err, common.ErrNoActiveProfile, "get active profile")
	}
	return &profile, nil
}

func (t *Tracker) hasActiveUser(ctx context.Context) (bool, error) {
	var count int64
	err := t.Db.Conn.WithContext(ctx).Model(&models.UserProfile{}).Where("is_active = ?", true).Count(&count).Error
	return count > 0, storageErr(err, "count active profiles")
}

func (t *Tracker) userExists(ctx context.Context, username string) (bool, error) {
	var count int64
	err := t.Db.Conn.WithContext(ctx).Model(&models.UserProfile{}).Where("username = ?", strings.TrimSpace(username)).Count(&count).Error
	return count > 0, storageErr(err, "check username")
}

func (t *Tracker) setActiveUser(ctx context.Context, username string) error {
	logger := common.GetCategoryLogger(common.LoggerNameTrackerCore, common.LoggerCategoryProfile)

	err := t.Db.Conn.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var profile models.UserProfile
		if err := tx.Where("username = ?", strings.TrimSpace(username)).First(&profile).Error; err != nil {
			return findErr(err, common.WithMessage(common.ErrProfileNotFound, fmt.Sprintf("no profile named %q", username)), "find profile")
		}
		if err := deactivateAll(tx); err != nil {
			return err
		}
		return tx.Model(&profile).Update("is_active", true).Error
	})
	if err != nil {
		return storageErr(err, "set active user")
	}
	t.publish(tableProfiles)

	logger.Info("Active user switched", zap.String("username", username))
	return nil
}

func (t *Tracker) listProfiles(ctx context.Context) ([]models.UserProfile, error) {
	var profiles []models.UserProfile
	err := t.Db.Conn.WithContext(ctx).Order("username").Find(&profiles).Error
	return profiles, storageErr(err, "list profiles")
}

func (t *Tracker) logout(ctx context.Context) error {
	if err := deactivateAll(t.Db.Conn.WithContext(ctx)); err != nil {
		return storageErr(err, "logout")
	}
	common.GetCategoryLogger(common.LoggerNameTrackerCore, common.LoggerCategoryProfile).Info("Logged out")
	return nil
}

func (t *Tracker) clearUserData(ctx context.Context) error {
	err := t.Db.Conn.WithContext(ctx).Where("1 = 1").Delete(&models.UserProfile{}).Error
	if err != nil {
		return storageErr(err, "clear user data")
	}
	common.GetCategoryLogger(common.LoggerNameTrackerCore, common.LoggerCategoryProfile).Warn("All user profiles removed")
	return nil
}

func (t *Tracker) watchActiveProfile(ctx context.Context) <-chan Snapshot[models.UserProfile] {
	return watch(ctx, t, []string{tableProfiles}, func(tx *gorm.DB) ([]models.UserProfile, error) {
		var profiles []models.UserProfile
		err := tx.Where("is_active = ?", true).Limit(1).Find(&profiles).Error
		return profiles, err
	})
}

type IProfileImpl struct {
	tracker *Tracker
}

func (ip *IProfileImpl) CreateProfile(ctx context.Context, input *models.UserProfile) (uint, error) {
	return ip.tracker.createProfile(ctx, input)
}

func (ip *IProfileImpl) UpdateProfile(ctx context.Context, input *models.UserProfile) error {
	return ip.tracker.updateProfile(ctx, input)
}

func (ip *IProfileImpl) GetProfile(ctx context.Context, id uint) (*models.UserProfile, error) {
	return ip.tracker.getProfile(ctx, id)
}

func (ip *IProfileImpl) GetActiveProfile(ctx context.Context) (*models.UserProfile, error) {
	return ip.tracker.getActiveProfile(ctx)
}

func (ip *IProfileImpl) HasActiveUser(ctx context.Context) (bool, error) {
	return ip.tracker.hasActiveUser(ctx)
}

func (ip *IProfileImpl) UserExists(ctx context.Context, username string) (bool, error) {
	return ip.tracker.userExists(ctx, username)
}

func (ip *IProfileImpl) SetActiveUser(ctx context.Context, username string) error {
	return ip.tracker.setActiveUser(ctx, username)
}

func (ip *IProfileImpl) ListProfiles(ctx context.Context) ([]models.UserProfile, error) {
	return ip.tracker.listProfiles(ctx)
}

func (ip *IProfileImpl) Logout(ctx context.Context) error {
	return ip.tracker.logout(ctx)
}

func (ip *IProfileImpl) ClearUserData(ctx context.Context) error {
	return ip.tracker.clearUserData(ctx)
}

func (ip *IProfileImpl) WatchActiveProfile(ctx context.Context) <-chan Snapshot[models.UserProfile] {
	return ip.tracker.watchActiveProfile(ctx)
}

func (t *Tracker) GetIProfile() IProfile {
	return &IProfileImpl{tracker: t}
}
