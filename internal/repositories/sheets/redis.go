package sheets

import (
	"context"
	"encoding/json"
	"log/slog"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/npc-generator/internal/errors"
	"github.com/KirkDiggler/npc-generator/internal/pkg/clock"
	"github.com/KirkDiggler/npc-generator/internal/pkg/idgen"
	redisclient "github.com/KirkDiggler/npc-generator/internal/redis"
)

const (
	sheetKeyPrefix = "npc_sheet:"
	createdIndex   = "npc_sheet:index:created"

	errSheetNil     = "sheet cannot be nil"
	errSheetIDEmpty = "sheet ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
	idGen  idgen.Generator
}

// RedisConfig contains configuration for the Redis sheet repository
type RedisConfig struct {
	Client      redisclient.Client
	Clock       clock.Clock
	IDGenerator idgen.Generator
}

// Validate validates the RedisConfig
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if cfg.Client == nil {
		vb.RequiredField("Client")
	}
	return vb.Build()
}

// NewRedis creates a new Redis-backed sheet repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}
	gen := cfg.IDGenerator
	if gen == nil {
		gen = idgen.NewUUID("")
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
		idGen:  gen,
	}, nil
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Sheet == nil {
		return nil, errors.InvalidArgument(errSheetNil)
	}

	sheet := *input.Sheet
	if sheet.ID == "" {
		sheet.ID = r.idGen.Generate()
	}
	if sheet.CreatedAt.IsZero() {
		sheet.CreatedAt = r.clock.Now()
	}

	key := sheetKeyPrefix + sheet.ID

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists > 0 {
		return nil, errors.AlreadyExistsf("sheet with ID %s already exists", sheet.ID)
	}

	data, err := json.Marshal(&sheet)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal sheet")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0)
	pipe.ZAdd(ctx, createdIndex, redis.Z{
		Score:  float64(sheet.CreatedAt.UnixMicro()),
		Member: sheet.ID,
	})

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to create sheet")
	}

	slog.DebugContext(ctx, "sheet saved", "sheet_id", sheet.ID, "groups", len(sheet.Groups))

	return &CreateOutput{Sheet: &sheet}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errSheetIDEmpty)
	}

	result, err := r.client.Get(ctx, sheetKeyPrefix+input.ID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("sheet with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get sheet")
	}

	var sheet Sheet
	if err := json.Unmarshal([]byte(result), &sheet); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal sheet")
	}

	return &GetOutput{Sheet: &sheet}, nil
}

func (r *redisRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	stop := int64(-1)
	if input.Limit > 0 {
		stop = int64(input.Limit) - 1
	}

	ids, err := r.client.ZRevRange(ctx, createdIndex, 0, stop).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list sheet index")
	}
	if len(ids) == 0 {
		return &ListOutput{Sheets: []*Sheet{}}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = sheetKeyPrefix + id
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get sheets")
	}

	sheets := make([]*Sheet, 0, len(values))
	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			// Index entry without data
			slog.WarnContext(ctx, "dangling sheet index entry", "sheet_id", ids[i])
			continue
		}

		var sheet Sheet
		if err := json.Unmarshal([]byte(raw), &sheet); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal sheet %s", ids[i])
		}
		sheets = append(sheets, &sheet)
	}

	return &ListOutput{Sheets: sheets}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errSheetIDEmpty)
	}

	pipe := r.client.TxPipeline()
	del := pipe.Del(ctx, sheetKeyPrefix+input.ID)
	pipe.ZRem(ctx, createdIndex, input.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete sheet")
	}
	if del.Val() == 0 {
		return nil, errors.NotFoundf("sheet with ID %s not found", input.ID)
	}

	return &DeleteOutput{}, nil
}
