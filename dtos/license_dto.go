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

package dtos

type LicenseRequestCreate struct {
	DeclarationID   string  `json:"declarationId" validate:"required"`
	RequesterWallet string  `json:"requesterWallet" validate:"required"`
	RequesterName   *string `json:"requesterName"`
	PermissionType  string  `json:"permissionType" validate:"required"`
}

type LicenseRequestDTO struct {
	ID              string  `json:"id"`
	DeclarationID   string  `json:"declarationId"`
	RequesterWallet string  `json:"requesterWallet"`
	RequesterName   *string `json:"requesterName"`
	PermissionType  string  `json:"permissionType"`
	Status          string  `json:"status"`
}

type ConsentDTO struct {
	TrainingRights   bool `json:"trainingRights"`
	DerivativeRights bool `json:"derivativeRights"`
	RemixRights      bool `json:"remixRights"`
	Locked           bool `json:"locked"`
}

type LicenseDecision struct {
	Request LicenseRequestDTO `json:"request"`
	Granted bool              `json:"granted"`
	Message string            `json:"message"`
	Consent ConsentDTO        `json:"consent"`
}

type PermissionFlags struct {
	Training   bool `json:"training"`
	Derivative bool `json:"derivative"`
	Remix      bool `json:"remix"`
}

type Permissions struct {
	DeclarationID string          `json:"declarationId"`
	Title         string          `json:"title"`
	Artist        string          `json:"artist"`
	Permissions   PermissionFlags `json:"permissions"`
	ConsentLocked bool            `json:"consentLocked"`
}
