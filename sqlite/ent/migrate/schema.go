// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AccountsColumns holds the columns for the "accounts" table.
	AccountsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "username", Type: field.TypeString, Unique: true},
		{Name: "display_name", Type: field.TypeString, Default: ""},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "password", Type: field.TypeString},
		{Name: "avatar_id", Type: field.TypeString, Default: ""},
		{Name: "banner_id", Type: field.TypeString, Default: ""},
		{Name: "bio", Type: field.TypeString, Default: ""},
		{Name: "website", Type: field.TypeString, Default: ""},
		{Name: "location", Type: field.TypeString, Default: ""},
		{Name: "is_admin", Type: field.TypeBool, Default: false},
		{Name: "is_suspended", Type: field.TypeBool, Default: false},
		{Name: "is_deleted", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
	}
	// AccountsTable holds the schema information for the "accounts" table.
	AccountsTable = &schema.Table{
		Name:       "accounts",
		Columns:    AccountsColumns,
		PrimaryKey: []*schema.Column{AccountsColumns[0]},
	}
	// AuthTokensColumns holds the columns for the "auth_tokens" table.
	AuthTokensColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "account_id", Type: field.TypeString},
		{Name: "user_agent", Type: field.TypeString},
		{Name: "ip", Type: field.TypeString},
		{Name: "issued_at", Type: field.TypeTime},
	}
	// AuthTokensTable holds the schema information for the "auth_tokens" table.
	AuthTokensTable = &schema.Table{
		Name:       "auth_tokens",
		Columns:    AuthTokensColumns,
		PrimaryKey: []*schema.Column{AuthTokensColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "authtoken_account_id",
				Unique:  false,
				Columns: []*schema.Column{AuthTokensColumns[1]},
			},
		},
	}
	// FollowsColumns holds the columns for the "follows" table.
	FollowsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "follower_id", Type: field.TypeString},
		{Name: "followee_id", Type: field.TypeString},
	}
	// FollowsTable holds the schema information for the "follows" table.
	FollowsTable = &schema.Table{
		Name:       "follows",
		Columns:    FollowsColumns,
		PrimaryKey: []*schema.Column{FollowsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "follow_follower_id_followee_id",
				Unique:  true,
				Columns: []*schema.Column{FollowsColumns[1], FollowsColumns[2]},
			},
			{
				Name:    "follow_followee_id",
				Unique:  false,
				Columns: []*schema.Column{FollowsColumns[2]},
			},
		},
	}
	// LikesColumns holds the columns for the "likes" table.
	LikesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "account_id", Type: field.TypeString},
		{Name: "tweet_id", Type: field.TypeString},
	}
	// LikesTable holds the schema information for the "likes" table.
	LikesTable = &schema.Table{
		Name:       "likes",
		Columns:    LikesColumns,
		PrimaryKey: []*schema.Column{LikesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "like_account_id_tweet_id",
				Unique:  true,
				Columns: []*schema.Column{LikesColumns[1], LikesColumns[2]},
			},
			{
				Name:    "like_tweet_id",
				Unique:  false,
				Columns: []*schema.Column{LikesColumns[2]},
			},
		},
	}
	// MediaColumns holds the columns for the "media" table.
	MediaColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "file", Type: field.TypeString},
		{Name: "type", Type: field.TypeInt},
		{Name: "account_id", Type: field.TypeString, Default: ""},
		{Name: "tweet_id", Type: field.TypeString, Default: ""},
		{Name: "is_deleted", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
	}
	// MediaTable holds the schema information for the "media" table.
	MediaTable = &schema.Table{
		Name:       "media",
		Columns:    MediaColumns,
		PrimaryKey: []*schema.Column{MediaColumns[0]},
	}
	// PushSubscriptionsColumns holds the columns for the "push_subscriptions" table.
	PushSubscriptionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "account_id", Type: field.TypeString},
		{Name: "p256dh", Type: field.TypeString},
		{Name: "auth", Type: field.TypeString},
	}
	// PushSubscriptionsTable holds the schema information for the "push_subscriptions" table.
	PushSubscriptionsTable = &schema.Table{
		Name:       "push_subscriptions",
		Columns:    PushSubscriptionsColumns,
		PrimaryKey: []*schema.Column{PushSubscriptionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "pushsubscription_account_id",
				Unique:  false,
				Columns: []*schema.Column{PushSubscriptionsColumns[1]},
			},
		},
	}
	// RecoveryTokensColumns holds the columns for the "recovery_tokens" table.
	RecoveryTokensColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "account_id", Type: field.TypeString, Unique: true},
		{Name: "issued_at", Type: field.TypeTime},
	}
	// RecoveryTokensTable holds the schema information for the "recovery_tokens" table.
	RecoveryTokensTable = &schema.Table{
		Name:       "recovery_tokens",
		Columns:    RecoveryTokensColumns,
		PrimaryKey: []*schema.Column{RecoveryTokensColumns[0]},
	}
	// TweetsColumns holds the columns for the "tweets" table.
	TweetsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "content", Type: field.TypeString},
		{Name: "author_id", Type: field.TypeString},
		{Name: "media_id", Type: field.TypeString, Default: ""},
		{Name: "replies_to", Type: field.TypeString, Default: ""},
		{Name: "replies_to_author", Type: field.TypeString, Default: ""},
		{Name: "sort_id", Type: field.TypeString, Unique: true},
		{Name: "is_deleted", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
	}
	// TweetsTable holds the schema information for the "tweets" table.
	TweetsTable = &schema.Table{
		Name:       "tweets",
		Columns:    TweetsColumns,
		PrimaryKey: []*schema.Column{TweetsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "tweet_author_id",
				Unique:  false,
				Columns: []*schema.Column{TweetsColumns[2]},
			},
			{
				Name:    "tweet_replies_to",
				Unique:  false,
				Columns: []*schema.Column{TweetsColumns[4]},
			},
			{
				Name:    "tweet_author_id_content",
				Unique:  false,
				Columns: []*schema.Column{TweetsColumns[2], TweetsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AccountsTable,
		AuthTokensTable,
		FollowsTable,
		LikesTable,
		MediaTable,
		PushSubscriptionsTable,
		RecoveryTokensTable,
		TweetsTable,
	}
)

func init() {
}
