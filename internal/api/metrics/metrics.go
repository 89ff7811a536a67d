// Package metrics defines and registers all custom Prometheus metrics for the
// e-commerce API. It is the single source of truth for metric names, labels,
// and help strings. Everything is registered with the default registry via
// promauto at package load time.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "ecommerce"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure" (failures are never broken down further,
//     mirroring the generic credential error returned to callers)
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts completed registrations.
// Label:
//   - role: initial role of the account ("ADMIN" or "USER")
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of successful account registrations, by initial role.",
	},
	[]string{"role"},
)

// RoleChangesTotal counts promote/demote operations.
// Labels:
//   - action: "promote" or "demote"
//   - result: "applied" or "missing_user"
var RoleChangesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "role_changes_total",
		Help:      "Total number of role management operations, by action and result.",
	},
	[]string{"action", "result"},
)

// ── Catalog metrics ───────────────────────────────────────────────────────────

// ProductsCreatedTotal counts newly created products.
// Label:
//   - category: resolved category name
var ProductsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "products_created_total",
		Help:      "Total number of products created, by category.",
	},
	[]string{"category"},
)

// CategoriesAutoCreatedTotal counts categories created implicitly because a
// product referenced a name that did not exist yet.
var CategoriesAutoCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "categories_auto_created_total",
		Help:      "Total number of categories auto-created during product writes.",
	},
)

// ProductListCacheTotal counts product list cache lookups.
// Label:
//   - result: "hit" or "miss"
var ProductListCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "product_list_cache_total",
		Help:      "Total number of product list cache lookups, by result (hit/miss).",
	},
	[]string{"result"},
)
