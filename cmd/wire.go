//go:build wireinject
// +build wireinject

package main

import (
	"github.com/Mushus/retweet"
	"github.com/Mushus/retweet/mail"
	"github.com/Mushus/retweet/sqlite"
	"github.com/Mushus/retweet/webpush"
	"github.com/google/wire"
	"github.com/rs/zerolog"
)

func createServer(log *zerolog.Logger) (*retweet.Server, error) {
	wire.Build(
		retweet.NewHandler,
		retweet.NewServer,
		retweet.ParseConfig,
		retweet.NewProcessor,
		retweet.NewTokenManager,
		retweet.NewAuthorizer,
		webpush.NewNotifier,
		mail.NewMailer,
		sqlite.NewSession,
		sqlite.NewSQLite,
		sqlite.NewAccountDB,
		sqlite.NewTweetDB,
		sqlite.NewFollowDB,
		sqlite.NewLikeDB,
		sqlite.NewMediaDB,
		sqlite.NewAuthTokenDB,
		sqlite.NewRecoveryTokenDB,
		sqlite.NewPushSubscriptionDB,
	)
	return nil, nil
}
