// Code generated by ent, DO NOT EDIT.

package ent

import (
	"github.com/Mushus/retweet/sqlite/ent/account"
	"github.com/Mushus/retweet/sqlite/ent/media"
	"github.com/Mushus/retweet/sqlite/ent/schema"
	"github.com/Mushus/retweet/sqlite/ent/tweet"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	accountFields := schema.Account{}.Fields()
	_ = accountFields
	// accountDescDisplayName is the schema descriptor for display_name field.
	accountDescDisplayName := accountFields[2].Descriptor()
	// account.DefaultDisplayName holds the default value on creation for the display_name field.
	account.DefaultDisplayName = accountDescDisplayName.Default.(string)
	// accountDescAvatarID is the schema descriptor for avatar_id field.
	accountDescAvatarID := accountFields[5].Descriptor()
	// account.DefaultAvatarID holds the default value on creation for the avatar_id field.
	account.DefaultAvatarID = accountDescAvatarID.Default.(string)
	// accountDescBannerID is the schema descriptor for banner_id field.
	accountDescBannerID := accountFields[6].Descriptor()
	// account.DefaultBannerID holds the default value on creation for the banner_id field.
	account.DefaultBannerID = accountDescBannerID.Default.(string)
	// accountDescBio is the schema descriptor for bio field.
	accountDescBio := accountFields[7].Descriptor()
	// account.DefaultBio holds the default value on creation for the bio field.
	account.DefaultBio = accountDescBio.Default.(string)
	// accountDescWebsite is the schema descriptor for website field.
	accountDescWebsite := accountFields[8].Descriptor()
	// account.DefaultWebsite holds the default value on creation for the website field.
	account.DefaultWebsite = accountDescWebsite.Default.(string)
	// accountDescLocation is the schema descriptor for location field.
	accountDescLocation := accountFields[9].Descriptor()
	// account.DefaultLocation holds the default value on creation for the location field.
	account.DefaultLocation = accountDescLocation.Default.(string)
	// accountDescIsAdmin is the schema descriptor for is_admin field.
	accountDescIsAdmin := accountFields[10].Descriptor()
	// account.DefaultIsAdmin holds the default value on creation for the is_admin field.
	account.DefaultIsAdmin = accountDescIsAdmin.Default.(bool)
	// accountDescIsSuspended is the schema descriptor for is_suspended field.
	accountDescIsSuspended := accountFields[11].Descriptor()
	// account.DefaultIsSuspended holds the default value on creation for the is_suspended field.
	account.DefaultIsSuspended = accountDescIsSuspended.Default.(bool)
	// accountDescIsDeleted is the schema descriptor for is_deleted field.
	accountDescIsDeleted := accountFields[12].Descriptor()
	// account.DefaultIsDeleted holds the default value on creation for the is_deleted field.
	account.DefaultIsDeleted = accountDescIsDeleted.Default.(bool)
	mediaFields := schema.Media{}.Fields()
	_ = mediaFields
	// mediaDescAccountID is the schema descriptor for account_id field.
	mediaDescAccountID := mediaFields[3].Descriptor()
	// media.DefaultAccountID holds the default value on creation for the account_id field.
	media.DefaultAccountID = mediaDescAccountID.Default.(string)
	// mediaDescTweetID is the schema descriptor for tweet_id field.
	mediaDescTweetID := mediaFields[4].Descriptor()
	// media.DefaultTweetID holds the default value on creation for the tweet_id field.
	media.DefaultTweetID = mediaDescTweetID.Default.(string)
	// mediaDescIsDeleted is the schema descriptor for is_deleted field.
	mediaDescIsDeleted := mediaFields[5].Descriptor()
	// media.DefaultIsDeleted holds the default value on creation for the is_deleted field.
	media.DefaultIsDeleted = mediaDescIsDeleted.Default.(bool)
	tweetFields := schema.Tweet{}.Fields()
	_ = tweetFields
	// tweetDescMediaID is the schema descriptor for media_id field.
	tweetDescMediaID := tweetFields[3].Descriptor()
	// tweet.DefaultMediaID holds the default value on creation for the media_id field.
	tweet.DefaultMediaID = tweetDescMediaID.Default.(string)
	// tweetDescRepliesTo is the schema descriptor for replies_to field.
	tweetDescRepliesTo := tweetFields[4].Descriptor()
	// tweet.DefaultRepliesTo holds the default value on creation for the replies_to field.
	tweet.DefaultRepliesTo = tweetDescRepliesTo.Default.(string)
	// tweetDescRepliesToAuthor is the schema descriptor for replies_to_author field.
	tweetDescRepliesToAuthor := tweetFields[5].Descriptor()
	// tweet.DefaultRepliesToAuthor holds the default value on creation for the replies_to_author field.
	tweet.DefaultRepliesToAuthor = tweetDescRepliesToAuthor.Default.(string)
	// tweetDescIsDeleted is the schema descriptor for is_deleted field.
	tweetDescIsDeleted := tweetFields[7].Descriptor()
	// tweet.DefaultIsDeleted holds the default value on creation for the is_deleted field.
	tweet.DefaultIsDeleted = tweetDescIsDeleted.Default.(bool)
}
