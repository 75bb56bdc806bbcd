package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"titlecheck/config"
)

func TestGormSlogLogger_ParamsFilter(t *testing.T) {
	quiet := newGormSlogLogger(slog.Default(), &config.Config{}).(*gormSlogLogger)
	sql, params := quiet.ParamsFilter(context.Background(), "INSERT INTO users VALUES (?)", "$2a$10$hash")
	assert.Equal(t, "INSERT INTO users VALUES (?)", sql)
	assert.Nil(t, params)

	debugCfg := &config.Config{}
	debugCfg.Env.Debug = true
	verbose := newGormSlogLogger(slog.Default(), debugCfg).(*gormSlogLogger)
	_, params = verbose.ParamsFilter(context.Background(), "SELECT ?", 1)
	assert.Equal(t, []any{1}, params)
}

func TestGormSlogLogger_Trace(t *testing.T) {
	var buf bytes.Buffer
	l := newGormSlogLogger(slog.New(slog.NewJSONHandler(&buf, nil)), &config.Config{})
	sqlFn := func() (string, int64) { return "SELECT 1", 1 }

	l.Trace(context.Background(), time.Now(), sqlFn, gorm.ErrRecordNotFound)
	assert.Zero(t, buf.Len())

	l.Trace(context.Background(), time.Now(), sqlFn, gorm.ErrInvalidData)
	assert.Contains(t, buf.String(), "GORM query failed")

	buf.Reset()
	l.LogMode(logger.Silent).Trace(context.Background(), time.Now(), sqlFn, gorm.ErrInvalidData)
	assert.Zero(t, buf.Len())
}
