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

type IssuanceCollaborator struct {
	Name         string  `json:"name"`
	Role         string  `json:"role"`
	Wallet       *string `json:"wallet"`
	RevenueSplit float64 `json:"revenue_split"`
}

type IssuanceIdentity struct {
	Title         string                 `json:"title"`
	Artist        string                 `json:"artist"`
	Wallet        *string                `json:"wallet"`
	Collaborators []IssuanceCollaborator `json:"collaborators"`
}

type IssuanceProvenance struct {
	IPFSCID           string                `json:"ipfs_cid"`
	SHA256Hash        string                `json:"sha256_hash"`
	CreatedAt         time.Time             `json:"created_at"`
	ParentDeclaration *LineageReferenceDTO  `json:"parent_declaration"`
	DerivedWorks      []LineageReferenceDTO `json:"derived_works"`
}

type IssuanceProduction struct {
	AIContribution AIContributionsDTO `json:"ai_contribution"`
	Methodology    *string            `json:"methodology"`
	ProcessBadges  []BadgeDTO         `json:"process_badges"`
}

type IssuanceMetrics struct {
	TransparencyScore int    `json:"transparency_score"`
	RarityTier        string `json:"rarity_tier"`
}

type IssuanceRights struct {
	AITraining  bool `json:"ai_training"`
	Derivatives bool `json:"derivatives"`
	Remixes     bool `json:"remixes"`
}

type IssuanceMinting struct {
	AlreadyMinted bool       `json:"already_minted"`
	TokenID       *int64     `json:"token_id"`
	ContractID    *string    `json:"contract_id"`
	TxHash        *string    `json:"tx_hash"`
	MintedAt      *time.Time `json:"minted_at"`
}

type PrimaryArtistSplit struct {
	Wallet     *string `json:"wallet"`
	Percentage float64 `json:"percentage"`
}

type CollaboratorSplit struct {
	Wallet     *string `json:"wallet"`
	Percentage float64 `json:"percentage"`
	Name       string  `json:"name"`
	Role       string  `json:"role"`
}

type IssuanceSplits struct {
	PrimaryArtist PrimaryArtistSplit  `json:"primary_artist"`
	Collaborators []CollaboratorSplit `json:"collaborators"`
	// Oversubscribed is set when the collaborator splits sum up to more than 100 percent.
	// The primary artist share is clamped to 0 in that case.
	Oversubscribed bool `json:"oversubscribed"`
}

// IssuanceExport is the document polled by the minting integration.
type IssuanceExport struct {
	DeclarationID string             `json:"declaration_id"`
	Version       string             `json:"version"`
	Platform      string             `json:"platform"`
	Identity      IssuanceIdentity   `json:"identity"`
	Provenance    IssuanceProvenance `json:"provenance"`
	Production    IssuanceProduction `json:"production"`
	Metrics       IssuanceMetrics    `json:"metrics"`
	Rights        IssuanceRights     `json:"rights"`
	Minting       IssuanceMinting    `json:"minting"`
	Splits        IssuanceSplits     `json:"splits"`
}

type IssuanceRejection struct {
	Error    string `json:"error"`
	Required int    `json:"required"`
	Current  int    `json:"current"`
}

// PreviewCard is the data behind the social preview image of a declaration.
type PreviewCard struct {
	ID                string     `json:"id"`
	Title             string     `json:"title"`
	Artist            string     `json:"artist"`
	TransparencyScore int        `json:"transparencyScore"`
	AverageAI         int        `json:"averageAI"`
	ToolCount         int        `json:"toolCount"`
	Badges            []BadgeDTO `json:"badges"`
	Minted            bool       `json:"minted"`
}
