// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Campaign is the predicate function for campaign builders.
type Campaign func(*sql.Selector)

// CampaignEmail is the predicate function for campaignemail builders.
type CampaignEmail func(*sql.Selector)

// Company is the predicate function for company builders.
type Company func(*sql.Selector)

// Lead is the predicate function for lead builders.
type Lead func(*sql.Selector)

// LeadStatusHistory is the predicate function for leadstatushistory builders.
type LeadStatusHistory func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
