// Code generated by Wire. DO NOT EDIT.

//go:generate go run github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package main

import (
	"github.com/Mushus/retweet"
	"github.com/Mushus/retweet/mail"
	"github.com/Mushus/retweet/sqlite"
	"github.com/Mushus/retweet/webpush"
	"github.com/rs/zerolog"
)

// Injectors from wire.go:

func createServer(log *zerolog.Logger) (*retweet.Server, error) {
	config, err := retweet.ParseConfig()
	if err != nil {
		return nil, err
	}
	session, err := sqlite.NewSession(config)
	if err != nil {
		return nil, err
	}
	sqLite, err := sqlite.NewSQLite(config)
	if err != nil {
		return nil, err
	}
	accountStore := sqlite.NewAccountDB(sqLite)
	authTokenStore := sqlite.NewAuthTokenDB(sqLite)
	recoveryTokenStore := sqlite.NewRecoveryTokenDB(sqLite)
	tokenManager := retweet.NewTokenManager(log, accountStore, authTokenStore, recoveryTokenStore)
	authorizer := retweet.NewAuthorizer(log, session, tokenManager)
	tweetStore := sqlite.NewTweetDB(sqLite)
	followStore := sqlite.NewFollowDB(sqLite)
	likeStore := sqlite.NewLikeDB(sqLite)
	mediaStore := sqlite.NewMediaDB(sqLite)
	pushSubscriptionStore := sqlite.NewPushSubscriptionDB(sqLite)
	notifier := webpush.NewNotifier(config)
	mailer := mail.NewMailer(config)
	processor := retweet.NewProcessor(config, log, tokenManager, accountStore, tweetStore, followStore, likeStore, mediaStore, pushSubscriptionStore, notifier, mailer)
	handler := retweet.NewHandler(config, log, session, authorizer, processor)
	server, err := retweet.NewServer(config, handler)
	if err != nil {
		return nil, err
	}
	return server, nil
}
