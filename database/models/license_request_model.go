// Copyright (C) 2026 o8 protocol contributors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PermissionType string

const (
	PermissionTraining   PermissionType = "training"
	PermissionDerivative PermissionType = "derivative"
	PermissionRemix      PermissionType = "remix"
)

func (p PermissionType) IsValid() bool {
	switch p {
	case PermissionTraining, PermissionDerivative, PermissionRemix:
		return true
	}
	return false
}

type LicenseRequestStatus string

const (
	LicenseRequestApproved LicenseRequestStatus = "approved"
	LicenseRequestDenied   LicenseRequestStatus = "denied"
)

// LicenseRequest records a third party asking to use a declared track.
// The request is decided right away based on the consent flags of the declaration.
type LicenseRequest struct {
	ID              uuid.UUID            `json:"id" gorm:"primaryKey;type:uuid;"`
	DeclarationID   string               `json:"declarationId" gorm:"type:text;not null;index;"`
	Declaration     Declaration          `json:"-" gorm:"foreignKey:DeclarationID;references:ID;constraint:OnDelete:CASCADE;"`
	RequesterWallet string               `json:"requesterWallet" gorm:"type:text;not null;"`
	RequesterName   *string              `json:"requesterName" gorm:"type:text;"`
	PermissionType  PermissionType       `json:"permissionType" gorm:"type:text;not null;"`
	Status          LicenseRequestStatus `json:"status" gorm:"type:text;not null;"`
	CreatedAt       time.Time            `json:"createdAt"`
	RespondedAt     *time.Time           `json:"respondedAt"`
}

func (LicenseRequest) TableName() string {
	return "license_requests"
}

func (l *LicenseRequest) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
