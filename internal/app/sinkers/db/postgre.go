package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"

	"github.com/francois-poidevin/flightsun/internal/app"
	"github.com/francois-poidevin/flightsun/internal/app/path"
	"github.com/francois-poidevin/flightsun/internal/app/tools"
	"github.com/sirupsen/logrus"
)

const (
	schemaname = "flightsun"
	tablename  = "analysis"
)

const createTableSQL = "CREATE TABLE IF NOT EXISTS " + schemaname + "." + tablename + ` (
	id uuid PRIMARY KEY,
	sunk_at timestamptz NOT NULL,
	from_code varchar(3) NOT NULL,
	to_code varchar(3) NOT NULL,
	departure timestamptz NOT NULL,
	duration_minutes integer,
	distance_km double precision,
	recommendation text,
	seat_suggestion varchar(10),
	will_see_sunrise boolean,
	will_see_sunset boolean,
	will_see_night boolean,
	will_see_golden_hour boolean,
	night_minutes double precision,
	summary text,
	payload jsonb,
	route geometry(LineString,4326))`

const insertSQL = "INSERT INTO " + schemaname + "." + tablename +
	" VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, ST_GeomFromText($17, 4326))"

type PostGreSinker struct {
	Log        *logrus.Logger
	conf       Configuration
	driverName string
	db         *sql.DB
}

func New(log *logrus.Logger, conf Configuration) app.Sinker {
	return &PostGreSinker{Log: log, conf: conf, driverName: "postgres"}
}

// DSN is the lib/pq connection string.
func (c Configuration) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s "+
		"password=%s dbname=%s sslmode=disable",
		c.Host, c.Port, c.User, c.Password, c.Dbname)
}

// Init connects and creates the schema and table. The pool is only kept when
// every step succeeds.
func (s *PostGreSinker) Init(ctx context.Context) error {
	s.Log.WithContext(ctx).WithFields(logrus.Fields{
		"host": s.conf.Host,
		"port": s.conf.Port,
		"db":   s.conf.Dbname,
	}).Info("Init DB ...")

	db, err := sql.Open(s.driverName, s.conf.DSN())
	if err != nil {
		return err
	}

	if err = s.prepare(ctx, db); err != nil {
		db.Close()
		return err
	}

	s.db = db
	return nil
}

func (s *PostGreSinker) prepare(ctx context.Context, db *sql.DB) error {
	if err := db.PingContext(ctx); err != nil {
		return err
	}
	s.Log.WithContext(ctx).Info("Successfully connected : " + s.conf.Host)

	createSchemaSQL := "CREATE SCHEMA IF NOT EXISTS " + schemaname
	s.Log.WithContext(ctx).WithFields(logrus.Fields{
		"SQL": createSchemaSQL,
	}).Info("create schema")
	if _, err := db.ExecContext(ctx, createSchemaSQL); err != nil {
		return err
	}

	s.Log.WithContext(ctx).WithFields(logrus.Fields{
		"SQL": createTableSQL,
	}).Info("create table")
	if _, err := db.ExecContext(ctx, createTableSQL); err != nil {
		return err
	}
	return nil
}

func (s *PostGreSinker) Sink(ctx context.Context, t time.Time, analysis *app.Analysis) error {
	if s.db == nil {
		return errors.New("db sinker is not initialized")
	}
	if analysis == nil {
		return nil
	}

	id := uuid.New()
	args, err := insertArgs(id, t, analysis)
	if err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, insertSQL, args...)
	if err != nil {
		return err
	}

	nb, _ := result.RowsAffected()
	s.Log.WithContext(ctx).WithFields(logrus.Fields{
		"id":            id.String(),
		"Rows Affected": nb,
	}).Info("Insert in DB ...")
	return nil
}

// insertArgs lays an analysis out in insertSQL column order.
func insertArgs(id uuid.UUID, t time.Time, a *app.Analysis) ([]interface{}, error) {
	departure, err := time.Parse(path.TimeLayout, a.Departure)
	if err != nil {
		return nil, err
	}
	route, err := tools.PathToWKT(path.Coordinates(a.Path))
	if err != nil {
		return nil, err
	}
	payload, err := json.Marshal(a)
	if err != nil {
		return nil, err
	}

	var (
		duration                           sql.NullInt64
		nightMinutes                       sql.NullFloat64
		suggestion, summary                sql.NullString
		sunrise, sunset, night, goldenHour bool
	)
	if r := a.EnhancedAnalysis; r != nil {
		sunrise, sunset, night, goldenHour = r.WillSeeSunrise, r.WillSeeSunset, r.WillSeeNight, r.WillSeeGoldenHour
		summary = sql.NullString{String: r.Summary, Valid: true}
		if !r.Fallback {
			duration = sql.NullInt64{Int64: int64(r.FlightMinutes), Valid: true}
			nightMinutes = sql.NullFloat64{Float64: r.NightMinutes, Valid: true}
			suggestion = sql.NullString{String: string(r.SeatSuggestion), Valid: true}
		}
	}

	return []interface{}{
		id.String(),
		t.UTC(),
		a.From.Code,
		a.To.Code,
		departure,
		duration,
		a.DistanceKm,
		a.Recommendation,
		suggestion,
		sunrise,
		sunset,
		night,
		goldenHour,
		nightMinutes,
		summary,
		string(payload),
		route,
	}, nil
}

func (s *PostGreSinker) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}
