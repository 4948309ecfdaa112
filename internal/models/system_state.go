package models

import (
	"errors"

	"gorm.io/gorm"
)

// SystemState is a key/value row for engine-internal bookkeeping, such
// as the watermark of the monthly processing.
type SystemState struct {
	Timestamps
	Key   string `gorm:"primaryKey"`
	Value string
}

func (SystemState) TableName() string {
	return "system_state"
}

func systemStateValue(tx *gorm.DB, key string) (string, error) {
	var state SystemState
	err := tx.First(&state, "key = ?", key).Error
	if err != nil {
		return "", err
	}

	return state.Value, nil
}

func setSystemState(tx *gorm.DB, key, value string) error {
	var state SystemState
	err := tx.First(&state, "key = ?", key).Error
	if err != nil {
		if errors.Is(err, ErrResourceNotFound) {
			return tx.Create(&SystemState{Key: key, Value: value}).Error
		}
		return err
	}

	return tx.Model(&state).Update("value", value).Error
}
