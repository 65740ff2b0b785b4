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

import "time"

type ContributorRequest struct {
	Name   string  `json:"name" validate:"required"`
	Role   string  `json:"role"`
	Wallet *string `json:"wallet"`
	Split  float64 `json:"split" validate:"gte=0,lte=100"`
}

type DeclarationCreateRequest struct {
	Title        string  `json:"title"`
	ArtistName   string  `json:"artistName" validate:"required"`
	ArtistWallet *string `json:"artistWallet"`

	DAWs     string `json:"daws"`
	Plugins  string `json:"plugins"`
	AIModels string `json:"aiModels"`

	AIComposition *int `json:"aiComposition" validate:"omitempty,gte=0,lte=100"`
	AIArrangement *int `json:"aiArrangement" validate:"omitempty,gte=0,lte=100"`
	AIProduction  *int `json:"aiProduction" validate:"omitempty,gte=0,lte=100"`
	AIMixing      *int `json:"aiMixing" validate:"omitempty,gte=0,lte=100"`
	AIMastering   *int `json:"aiMastering" validate:"omitempty,gte=0,lte=100"`

	Methodology *string `json:"methodology"`
	IPFSCID     string  `json:"ipfsCID"`
	SHA256      string  `json:"sha256"`

	TrainingRights   bool `json:"trainingRights"`
	DerivativeRights bool `json:"derivativeRights"`
	RemixRights      bool `json:"remixRights"`

	ContributorSplits []ContributorRequest `json:"contributorSplits" validate:"dive"`

	ParentDeclarationID *string `json:"parentDeclarationId"`
	ParentRelation      *string `json:"parentRelation"`

	TokenID    *int64  `json:"tokenId"`
	ContractID *string `json:"contractId"`
	TxHash     *string `json:"txHash"`
}

// DeclarationPatchRequest carries the fields which may change after creation.
// Nil fields are left untouched.
type DeclarationPatchRequest struct {
	TokenID       *int64  `json:"tokenId"`
	ContractID    *string `json:"contractId"`
	TxHash        *string `json:"txHash"`
	ConsentLocked *bool   `json:"consentLocked"`
	SplitsLocked  *bool   `json:"splitsLocked"`
}

type DeclarationDTO struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	ArtistName   string  `json:"artistName"`
	ArtistWallet *string `json:"artistWallet"`
	AuthMethod   string  `json:"authMethod"`

	DAWs     string `json:"daws"`
	Plugins  string `json:"plugins"`
	AIModels string `json:"aiModels"`

	AIComposition *int `json:"aiComposition"`
	AIArrangement *int `json:"aiArrangement"`
	AIProduction  *int `json:"aiProduction"`
	AIMixing      *int `json:"aiMixing"`
	AIMastering   *int `json:"aiMastering"`

	Methodology *string `json:"methodology"`
	IPFSCID     string  `json:"ipfsCID"`
	SHA256      string  `json:"sha256"`

	TrainingRights   bool `json:"trainingRights"`
	DerivativeRights bool `json:"derivativeRights"`
	RemixRights      bool `json:"remixRights"`
	ConsentLocked    bool `json:"consentLocked"`
	SplitsLocked     bool `json:"splitsLocked"`

	ContributorSplits []ContributorDTO `json:"contributorSplits"`

	ParentDeclarationID *string `json:"parentDeclarationId"`
	ParentRelation      *string `json:"parentRelation"`

	// cached at creation time
	TransparencyScore int    `json:"transparencyScore"`
	Badge             string `json:"badge"`

	TokenID    *int64     `json:"tokenId"`
	ContractID *string    `json:"contractId"`
	TxHash     *string    `json:"txHash"`
	MintedAt   *time.Time `json:"mintedAt"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type DeclarationSummaryDTO struct {
	ID                string    `json:"id"`
	Title             string    `json:"title"`
	ArtistName        string    `json:"artistName"`
	ParentRelation    *string   `json:"parentRelation"`
	TransparencyScore int       `json:"transparencyScore"`
	CreatedAt         time.Time `json:"createdAt"`
}

type DeclarationDetailsDTO struct {
	DeclarationDTO
	Badges       []BadgeDTO              `json:"badges"`
	DerivedWorks []DeclarationSummaryDTO `json:"derivedWorks"`
}

type LineageNodeDTO struct {
	DeclarationSummaryDTO
	Position  string  `json:"position"`
	AverageAI float64 `json:"averageAI"`
	ToolCount int     `json:"toolCount"`
}

type LineageDeltaDTO struct {
	FromID            string  `json:"fromId"`
	ToID              string  `json:"toId"`
	AverageAI         float64 `json:"averageAI"`
	TransparencyScore int     `json:"transparencyScore"`
	ToolCount         int     `json:"toolCount"`
}

type LineageDTO struct {
	DeclarationID    string            `json:"declarationId"`
	IsOriginal       bool              `json:"isOriginal"`
	Nodes            []LineageNodeDTO  `json:"nodes"`
	Deltas           []LineageDeltaDTO `json:"deltas"`
	Truncated        bool              `json:"truncated"`
	TruncationReason string            `json:"truncationReason,omitempty"`
}

type GalleryFilterDTO struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

type BadgeRegistryDTO struct {
	Badges  []BadgeDTO         `json:"badges"`
	Filters []GalleryFilterDTO `json:"filters"`
}

// StaleDeclaration describes a declaration whose cached score or badges no longer
// match the values the current formulas produce.
type StaleDeclaration struct {
	ID                string `json:"id"`
	Title             string `json:"title"`
	CachedScore       int    `json:"cachedScore"`
	TransparencyScore int    `json:"transparencyScore"`
	CachedBadge       string `json:"cachedBadge"`
	Badge             string `json:"badge"`
}
