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

package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/o8-protocol/arch/database/models"
	"github.com/o8-protocol/arch/dtos"
	"github.com/o8-protocol/arch/monitoring"
	"github.com/o8-protocol/arch/shared"
	"github.com/o8-protocol/arch/transformer"
)

var ErrInvalidPermissionType = errors.New("invalid permission type. Must be training, derivative, or remix")

type LicenseService struct {
	declarationRepository    shared.DeclarationRepository
	licenseRequestRepository shared.LicenseRequestRepository
	now                      func() time.Time
}

func NewLicenseService(declarationRepository shared.DeclarationRepository, licenseRequestRepository shared.LicenseRequestRepository) *LicenseService {
	return &LicenseService{
		declarationRepository:    declarationRepository,
		licenseRequestRepository: licenseRequestRepository,
		now:                      time.Now,
	}
}

func isGranted(declaration models.Declaration, permissionType models.PermissionType) bool {
	switch permissionType {
	case models.PermissionTraining:
		return declaration.TrainingRights
	case models.PermissionDerivative:
		return declaration.DerivativeRights
	case models.PermissionRemix:
		return declaration.RemixRights
	}
	return false
}

// Request decides a license request against the consent flags of the declaration
// and persists the decision. Denied requests are persisted as well.
func (s *LicenseService) Request(ctx context.Context, req dtos.LicenseRequestCreate) (dtos.LicenseDecision, error) {
	permissionType := models.PermissionType(req.PermissionType)
	if !permissionType.IsValid() {
		return dtos.LicenseDecision{}, ErrInvalidPermissionType
	}

	declaration, err := s.declarationRepository.FindByID(ctx, req.DeclarationID)
	if err != nil {
		return dtos.LicenseDecision{}, fmt.Errorf("could not read declaration %s: %w", req.DeclarationID, err)
	}

	granted := isGranted(declaration, permissionType)
	status := models.LicenseRequestDenied
	if granted {
		status = models.LicenseRequestApproved
	}

	respondedAt := s.now()
	licenseRequest := models.LicenseRequest{
		DeclarationID:   declaration.ID,
		RequesterWallet: req.RequesterWallet,
		RequesterName:   req.RequesterName,
		PermissionType:  permissionType,
		Status:          status,
		RespondedAt:     &respondedAt,
	}
	if err := s.licenseRequestRepository.Create(nil, &licenseRequest); err != nil {
		return dtos.LicenseDecision{}, fmt.Errorf("could not save license request: %w", err)
	}

	monitoring.LicenseRequests.WithLabelValues(string(permissionType), string(status)).Inc()
	slog.Info("license request decided", "declarationID", declaration.ID, "permissionType", permissionType, "status", status)

	message := fmt.Sprintf("Permission granted for %s on %q", permissionType, declaration.Title)
	if !granted {
		message = fmt.Sprintf("Permission denied for %s on %q. The artist has not enabled this right.", permissionType, declaration.Title)
	}

	return dtos.LicenseDecision{
		Request: transformer.LicenseRequestModelToDTO(licenseRequest),
		Granted: granted,
		Message: message,
		Consent: transformer.ConsentOf(declaration),
	}, nil
}

func (s *LicenseService) Permissions(ctx context.Context, declarationID string) (dtos.Permissions, error) {
	declaration, err := s.declarationRepository.FindByID(ctx, declarationID)
	if err != nil {
		return dtos.Permissions{}, fmt.Errorf("could not read declaration %s: %w", declarationID, err)
	}

	return dtos.Permissions{
		DeclarationID: declaration.ID,
		Title:         declaration.Title,
		Artist:        declaration.ArtistName,
		Permissions: dtos.PermissionFlags{
			Training:   declaration.TrainingRights,
			Derivative: declaration.DerivativeRights,
			Remix:      declaration.RemixRights,
		},
		ConsentLocked: declaration.ConsentLocked,
	}, nil
}
