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

type AuthMethod string

const (
	AuthMethodWallet    AuthMethod = "wallet"
	AuthMethodAnonymous AuthMethod = "anonymous"
)

// Contributor is a single collaborator of a declaration. Split is the share of
// the revenue in percent. The list of contributors is stored as json and is
// not validated to sum up to 100.
type Contributor struct {
	Name   string  `json:"name"`
	Role   string  `json:"role"`
	Wallet *string `json:"wallet,omitempty"`
	Split  float64 `json:"split"`
}

// Declaration documents the creative process and the provenance of a single track.
// TransparencyScore and Badge are cached at creation time and are NOT recomputed
// when the declaration changes afterwards.
type Declaration struct {
	ID           string     `json:"id" gorm:"primaryKey;type:text;"`
	Title        string     `json:"title" gorm:"type:text;not null;default:'';"`
	ArtistName   string     `json:"artistName" gorm:"type:text;not null;index;"`
	ArtistWallet *string    `json:"artistWallet" gorm:"type:text;index;"`
	AuthMethod   AuthMethod `json:"authMethod" gorm:"type:text;not null;default:'anonymous';"`

	// creative stack - comma separated token lists
	DAWs     string `json:"daws" gorm:"column:daws;type:text;not null;default:'';"`
	Plugins  string `json:"plugins" gorm:"type:text;not null;default:'';"`
	AIModels string `json:"aiModels" gorm:"column:ai_models;type:text;not null;default:'';"`

	// production intelligence - nil means the phase was not disclosed
	AIComposition *int `json:"aiComposition" gorm:"column:ai_composition;type:integer;"`
	AIArrangement *int `json:"aiArrangement" gorm:"column:ai_arrangement;type:integer;"`
	AIProduction  *int `json:"aiProduction" gorm:"column:ai_production;type:integer;"`
	AIMixing      *int `json:"aiMixing" gorm:"column:ai_mixing;type:integer;"`
	AIMastering   *int `json:"aiMastering" gorm:"column:ai_mastering;type:integer;"`

	Methodology *string `json:"methodology" gorm:"type:text;"`

	IPFSCID string `json:"ipfsCID" gorm:"column:ipfs_cid;type:text;not null;default:'';"`
	SHA256  string `json:"sha256" gorm:"column:sha256;type:text;not null;default:'';"`

	TrainingRights   bool `json:"trainingRights" gorm:"not null;default:false;"`
	DerivativeRights bool `json:"derivativeRights" gorm:"not null;default:false;"`
	RemixRights      bool `json:"remixRights" gorm:"not null;default:false;"`
	ConsentLocked    bool `json:"consentLocked" gorm:"not null;default:false;"`
	SplitsLocked     bool `json:"splitsLocked" gorm:"not null;default:false;"`

	Contributors []Contributor `json:"contributorSplits" gorm:"column:contributor_splits;type:jsonb;serializer:json;"`

	// lineage - the parent is referenced, not owned
	ParentDeclarationID *string `json:"parentDeclarationId" gorm:"column:parent_declaration_id;type:text;index;"`
	ParentRelation      *string `json:"parentRelation" gorm:"type:text;"`

	TransparencyScore int    `json:"transparencyScore" gorm:"not null;default:0;index;"`
	Badge             string `json:"badge" gorm:"type:text;not null;default:'';"`

	TokenID    *int64     `json:"tokenId" gorm:"type:bigint;"`
	ContractID *string    `json:"contractId" gorm:"type:text;"`
	TxHash     *string    `json:"txHash" gorm:"type:text;"`
	MintedAt   *time.Time `json:"mintedAt"`

	CreatedAt time.Time `json:"createdAt" gorm:"index;"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Declaration) TableName() string {
	return "declarations"
}

func (d *Declaration) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}

// Phases returns the five production phases in their canonical order:
// composition, arrangement, production, mixing, mastering.
func (d Declaration) Phases() [5]*int {
	return [5]*int{d.AIComposition, d.AIArrangement, d.AIProduction, d.AIMixing, d.AIMastering}
}

func (d Declaration) IsMinted() bool {
	return d.TokenID != nil
}

// IsAnonymous reports whether the declaration is neither bound to a wallet nor minted.
func (d Declaration) IsAnonymous() bool {
	return (d.ArtistWallet == nil || *d.ArtistWallet == "") && d.TokenID == nil
}

// AssignToken attaches the minting information. MintedAt is only set the
// first time a token id gets assigned.
func (d *Declaration) AssignToken(tokenID int64, now time.Time) {
	d.TokenID = &tokenID
	if d.MintedAt == nil {
		d.MintedAt = &now
	}
}
