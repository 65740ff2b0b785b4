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

type BadgeDTO struct {
	Key       string `json:"key"`
	Label     string `json:"label"`
	Color     string `json:"color"`
	TextColor string `json:"text_color,omitempty"`
}

type ContributorDTO struct {
	Name   string  `json:"name"`
	Role   string  `json:"role"`
	Wallet *string `json:"wallet"`
	Split  float64 `json:"split"`
}

type ScoreBreakdownDTO struct {
	Base          int `json:"base"`
	Phases        int `json:"phases"`
	Methodology   int `json:"methodology"`
	Stack         int `json:"stack"`
	Provenance    int `json:"provenance"`
	Collaboration int `json:"collaboration"`
	Total         int `json:"total"`
}

// AIContributionsDTO carries the five production phases. A nil phase was not disclosed.
type AIContributionsDTO struct {
	Composition *int `json:"composition"`
	Arrangement *int `json:"arrangement"`
	Production  *int `json:"production"`
	Mixing      *int `json:"mixing"`
	Mastering   *int `json:"mastering"`
	Average     int  `json:"average"`
}

type ExportTrack struct {
	Title           string  `json:"title"`
	Artist          string  `json:"artist"`
	ArtistWallet    *string `json:"artist_wallet"`
	TokenID         *int64  `json:"token_id"`
	ContractAddress *string `json:"contract_address"`
}

type ExportCreativeStack struct {
	DAWs      []string `json:"daws"`
	Plugins   []string `json:"plugins"`
	AIModels  []string `json:"ai_models"`
	ToolCount int      `json:"tool_count"`
}

type ExportScores struct {
	Transparency int               `json:"transparency"`
	Breakdown    ScoreBreakdownDTO `json:"breakdown"`
}

// ExportCache exposes the values stored at creation time. Stale is true when they
// differ from what the current formulas produce.
type ExportCache struct {
	TransparencyScore int      `json:"transparency_score"`
	Badges            []string `json:"badges"`
	Stale             bool     `json:"stale"`
}

type ExportConsent struct {
	TrainingRights   bool `json:"training_rights"`
	DerivativeRights bool `json:"derivative_rights"`
	RemixRights      bool `json:"remix_rights"`
	Locked           bool `json:"locked"`
}

type ExportVerification struct {
	IPFSCID    string  `json:"ipfs_cid"`
	SHA256Hash string  `json:"sha256_hash"`
	TxHash     *string `json:"tx_hash"`
}

type LineageReferenceDTO struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Artist   string  `json:"artist"`
	Relation *string `json:"relation"`
}

type ExportLineage struct {
	Parent       *LineageReferenceDTO  `json:"parent"`
	DerivedWorks []LineageReferenceDTO `json:"derived_works"`
	Depth        int                   `json:"depth"`
	Truncated    bool                  `json:"truncated"`
}

type ExportTimestamps struct {
	CreatedAt time.Time  `json:"created_at"`
	MintedAt  *time.Time `json:"minted_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// PublicExport is the versioned metadata document served for downloads and the public read endpoint.
type PublicExport struct {
	Schema            string              `json:"$schema"`
	Version           string              `json:"version"`
	Protocol          string              `json:"protocol"`
	DeclarationID     string              `json:"declaration_id"`
	Track             ExportTrack         `json:"track"`
	AIContributions   AIContributionsDTO  `json:"ai_contributions"`
	CreativeStack     ExportCreativeStack `json:"creative_stack"`
	Methodology       *string             `json:"methodology"`
	Scores            ExportScores        `json:"scores"`
	Badges            []BadgeDTO          `json:"badges"`
	Cache             ExportCache         `json:"cache"`
	Consent           ExportConsent       `json:"consent"`
	ContributorSplits []ContributorDTO    `json:"contributor_splits"`
	Verification      ExportVerification  `json:"verification"`
	Lineage           ExportLineage       `json:"lineage"`
	Timestamps        ExportTimestamps    `json:"timestamps"`
}
