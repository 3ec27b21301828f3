package main

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/npc-generator/internal/corpus"
	"github.com/KirkDiggler/npc-generator/internal/engine"
	"github.com/KirkDiggler/npc-generator/internal/errors"
	"github.com/KirkDiggler/npc-generator/internal/pkg/clock"
	"github.com/KirkDiggler/npc-generator/internal/pkg/idgen"
	"github.com/KirkDiggler/npc-generator/internal/redis"
	"github.com/KirkDiggler/npc-generator/internal/repositories/sheets"
	"github.com/KirkDiggler/npc-generator/internal/settings"
)

// buildResolver loads both corpora and wires the engine
func (o *rootOptions) buildResolver(roller dice.Roller) (engine.Resolver, error) {
	groups, err := corpus.LoadDatabase(o.database)
	if err != nil {
		return nil, err
	}

	cfg, err := settings.Load(o.config)
	if err != nil {
		return nil, err
	}

	slog.Debug("corpora loaded",
		"database", o.database,
		"config", o.config,
		"groups", len(groups.Groups()),
		"skipped_declarations", len(cfg.Skipped))

	return engine.New(&engine.Config{
		Groups:   groups,
		Settings: cfg,
		Roller:   roller,
	})
}

// openRepository connects the redis sheet store
func (o *rootOptions) openRepository(ctx context.Context) (sheets.Repository, func(), error) {
	if o.redisAddr == "" {
		return nil, nil, errors.InvalidArgument("redis address is required (--redis or NPCGEN_REDIS_ADDR)")
	}

	client, err := redis.NewClient(o.redisAddr, &redis.Options{DB: o.redisDB})
	if err != nil {
		return nil, nil, err
	}
	closeFn := func() { _ = client.Close() }

	if err := redis.Ping(ctx, client); err != nil {
		closeFn()
		return nil, nil, err
	}

	repo, err := sheets.NewRedis(&sheets.RedisConfig{
		Client:      client,
		Clock:       clock.New(),
		IDGenerator: idgen.NewUUID(""),
	})
	if err != nil {
		closeFn()
		return nil, nil, err
	}

	return repo, closeFn, nil
}

// openSaver returns the redis store when configured and the save file
// otherwise
func (o *rootOptions) openSaver(ctx context.Context) (sheets.Saver, func(), error) {
	if o.redisAddr != "" {
		repo, closeFn, err := o.openRepository(ctx)
		if err != nil {
			return nil, nil, err
		}
		return repo, closeFn, nil
	}

	repo, err := sheets.NewFile(&sheets.FileConfig{
		Path:        o.savePath,
		Clock:       clock.New(),
		IDGenerator: idgen.NewUUID(""),
	})
	if err != nil {
		return nil, nil, err
	}
	return repo, func() {}, nil
}

// saveTarget names where saved sheets go
func (o *rootOptions) saveTarget() string {
	if o.redisAddr != "" {
		return "redis://" + o.redisAddr
	}
	return o.savePath
}
