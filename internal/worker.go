package internal

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/francois-poidevin/flightsun/config"
	"github.com/francois-poidevin/flightsun/internal/app"
	"github.com/francois-poidevin/flightsun/internal/app/rest"
	"github.com/francois-poidevin/flightsun/internal/app/service"
	pgSinker "github.com/francois-poidevin/flightsun/internal/app/sinkers/db"
	fileSinker "github.com/francois-poidevin/flightsun/internal/app/sinkers/file"
	stdoutSinker "github.com/francois-poidevin/flightsun/internal/app/sinkers/stdout"
	"github.com/francois-poidevin/flightsun/internal/app/sun"
	"github.com/sirupsen/logrus"
)

const shutdownTimeout = 5 * time.Second

// NewService builds the analysis service from the configuration.
func NewService(log *logrus.Logger, conf config.Configuration) (*service.Service, error) {
	classifier, ok := sun.ClassifierByName(strings.ToLower(conf.Flightsun.Classifier))
	if !ok {
		return nil, fmt.Errorf("unknown classifier %q, expected clock or elevation", conf.Flightsun.Classifier)
	}
	if err := conf.Flightsun.Sampling.Validate(); err != nil {
		return nil, err
	}

	return service.New(log, service.Options{
		Sampler:    conf.Flightsun.Sampling.Sampler(),
		Classifier: classifier,
		CacheSize:  conf.Flightsun.CacheSize,
		BatchLimit: conf.Flightsun.HTTP.BatchLimit,
	})
}

// NewSinker returns the sinker selected by Flightsun.sinkertype.
func NewSinker(log *logrus.Logger, conf config.Configuration) (app.Sinker, error) {
	switch strings.ToUpper(conf.Flightsun.Sinkertype) {
	case "FILE":
		return fileSinker.New(log, conf.Flightsun.File), nil
	case "STDOUT":
		return stdoutSinker.New(log), nil
	case "DB":
		return pgSinker.New(log, conf.Flightsun.DB), nil
	default:
		return nil, errors.New("Wrong sinker specified")
	}
}

//Execute - analyse one flight and send the result to the configured sinker
func Execute(ctx context.Context,
	log *logrus.Logger,
	conf config.Configuration,
	query app.Query) error {

	log.WithContext(ctx).WithFields(logrus.Fields{
		"from":       query.From,
		"to":         query.To,
		"departure":  query.Departure,
		"classifier": conf.Flightsun.Classifier,
		"sinkerType": conf.Flightsun.Sinkertype,
	}).Info("START with Configuration params: ")

	svc, err := NewService(log, conf)
	if err != nil {
		return err
	}

	sinker, err := NewSinker(log, conf)
	if err != nil {
		return err
	}

	log.WithContext(ctx).Info("Initiate " + strings.ToUpper(conf.Flightsun.Sinkertype) + " Sinker")
	if err := sinker.Init(ctx); err != nil {
		log.WithContext(ctx).Error(err)
		return err
	}
	defer func() {
		if err := sinker.Close(); err != nil {
			log.WithContext(ctx).WithFields(logrus.Fields{
				"Error": err,
			}).Warn("Unable to close sinker")
		}
	}()

	analysis, err := svc.Analyze(ctx, query)
	if err != nil {
		return err
	}

	return sinker.Sink(ctx, time.Now(), analysis)
}

//Serve - run the REST service until ctx is cancelled
func Serve(ctx context.Context, log *logrus.Logger, conf config.Configuration) error {
	svc, err := NewService(log, conf)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              conf.Flightsun.HTTP.Listen,
		Handler:           rest.NewRouter(log, svc),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithContext(ctx).WithFields(logrus.Fields{
			"listen": srv.Addr,
		}).Info("HTTP service started")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		log.WithContext(ctx).Info("Shutting down HTTP service")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
