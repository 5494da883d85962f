// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Account is the predicate function for account builders.
type Account func(*sql.Selector)

// AuthToken is the predicate function for authtoken builders.
type AuthToken func(*sql.Selector)

// Follow is the predicate function for follow builders.
type Follow func(*sql.Selector)

// Like is the predicate function for like builders.
type Like func(*sql.Selector)

// Media is the predicate function for media builders.
type Media func(*sql.Selector)

// PushSubscription is the predicate function for pushsubscription builders.
type PushSubscription func(*sql.Selector)

// RecoveryToken is the predicate function for recoverytoken builders.
type RecoveryToken func(*sql.Selector)

// Tweet is the predicate function for tweet builders.
type Tweet func(*sql.Selector)
