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

package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var DeclarationsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "arch_declarations_created_total",
	Help: "Number of created declarations by authentication method",
}, []string{"auth_method"})

var DeclarationTransparencyScore = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "arch_declaration_transparency_score",
	Help:    "Transparency score of created declarations",
	Buckets: []float64{30, 40, 50, 60, 70, 80, 85, 90, 95, 100},
})

var DeclarationBadgesAwarded = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "arch_declaration_badges_awarded_total",
	Help: "Number of badges awarded to created declarations",
}, []string{"badge"})

var ExportsServed = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "arch_exports_served_total",
	Help: "Number of served export documents by kind",
}, []string{"kind"})

var IssuanceRejected = promauto.NewCounter(prometheus.CounterOpts{
	Name: "arch_issuance_rejected_total",
	Help: "Number of issuance exports rejected because the transparency score was below the minting threshold",
})

var IssuanceCacheHits = promauto.NewCounter(prometheus.CounterOpts{
	Name: "arch_issuance_cache_hits_total",
	Help: "Number of issuance exports served from the cache",
})

var LineageResolveDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "arch_lineage_resolve_duration_seconds",
	Help:    "Duration of lineage resolution in seconds",
	Buckets: prometheus.DefBuckets,
})

var LineageTruncated = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "arch_lineage_truncated_total",
	Help: "Number of truncated lineage walks by reason",
}, []string{"reason"})

var LicenseRequests = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "arch_license_requests_total",
	Help: "Number of license requests by permission type and status",
}, []string{"permission_type", "status"})
