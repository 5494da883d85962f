// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/Mushus/retweet/sqlite/ent/recoverytoken"
)

// RecoveryToken is the model entity for the RecoveryToken schema.
type RecoveryToken struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// AccountID holds the value of the "account_id" field.
	AccountID string `json:"account_id,omitempty"`
	// IssuedAt holds the value of the "issued_at" field.
	IssuedAt     time.Time `json:"issued_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*RecoveryToken) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case recoverytoken.FieldID, recoverytoken.FieldAccountID:
			values[i] = new(sql.NullString)
		case recoverytoken.FieldIssuedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the RecoveryToken fields.
func (rt *RecoveryToken) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case recoverytoken.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				rt.ID = value.String
			}
		case recoverytoken.FieldAccountID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field account_id", values[i])
			} else if value.Valid {
				rt.AccountID = value.String
			}
		case recoverytoken.FieldIssuedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field issued_at", values[i])
			} else if value.Valid {
				rt.IssuedAt = value.Time
			}
		default:
			rt.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the RecoveryToken.
// This includes values selected through modifiers, order, etc.
func (rt *RecoveryToken) Value(name string) (ent.Value, error) {
	return rt.selectValues.Get(name)
}

// Update returns a builder for updating this RecoveryToken.
// Note that you need to call RecoveryToken.Unwrap() before calling this method if this RecoveryToken
// was returned from a transaction, and the transaction was committed or rolled back.
func (rt *RecoveryToken) Update() *RecoveryTokenUpdateOne {
	return NewRecoveryTokenClient(rt.config).UpdateOne(rt)
}

// Unwrap unwraps the RecoveryToken entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (rt *RecoveryToken) Unwrap() *RecoveryToken {
	_tx, ok := rt.config.driver.(*txDriver)
	if !ok {
		panic("ent: RecoveryToken is not a transactional entity")
	}
	rt.config.driver = _tx.drv
	return rt
}

// String implements the fmt.Stringer.
func (rt *RecoveryToken) String() string {
	var builder strings.Builder
	builder.WriteString("RecoveryToken(")
	builder.WriteString(fmt.Sprintf("id=%v, ", rt.ID))
	builder.WriteString("account_id=")
	builder.WriteString(rt.AccountID)
	builder.WriteString(", ")
	builder.WriteString("issued_at=")
	builder.WriteString(rt.IssuedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// RecoveryTokens is a parsable slice of RecoveryToken.
type RecoveryTokens []*RecoveryToken
