package report

import (
	"context"
	"io"
	"os"

	foundation "github.com/estafette/estafette-foundation"
	"github.com/opentracing/opentracing-go"
	"github.com/rs/zerolog/log"
	"github.com/uber/jaeger-client-go"
	jaegercfg "github.com/uber/jaeger-client-go/config"

	"github.com/failman/failman/api"
	"github.com/failman/failman/clients/buildbot"
	"github.com/failman/failman/clients/mailer"
	"github.com/failman/failman/config"
)

// Service polls the buildbot api for the latest build results per branch and mails a
// report of the failed ones
//go:generate mockgen -package=report -destination ./mock.go -source=service.go
type Service interface {
	Run(ctx context.Context) (err error)
}

// NewService returns a new report Service
func NewService(applicationInfo foundation.ApplicationInfo, config config.Config, buildbotClient buildbot.Client, mailerClient mailer.Client) (Service, error) {
	return &service{
		applicationInfo: applicationInfo,
		config:          config,
		buildbotClient:  buildbotClient,
		mailerClient:    mailerClient,
	}, nil
}

type service struct {
	applicationInfo foundation.ApplicationInfo
	config          config.Config
	buildbotClient  buildbot.Client
	mailerClient    mailer.Client
}

func (s *service) Run(ctx context.Context) (err error) {

	closer := s.initJaeger(s.applicationInfo.App)
	defer closer.Close()

	rootSpan := opentracing.StartSpan("RunReport")
	defer rootSpan.Finish()

	ctx = opentracing.ContextWithSpan(ctx, rootSpan)

	builders, err := s.buildbotClient.GetBuilders(ctx)
	if err != nil {
		return err
	}

	builders = FilterBuilders(builders, s.config.Configuration.BuilderFilter)
	log.Info().Msgf("Polling %v builders on %v branches...", len(builders), len(s.config.Configuration.Branches))

	// branches are processed one at a time, in configured order
	rows := make([]api.ReportRow, 0)
	for _, branch := range s.config.Configuration.Branches {
		change, err := s.buildbotClient.GetLatestChange(ctx, branch)
		if err != nil {
			return err
		}
		if change == nil {
			log.Debug().Msgf("No changes on branch %v", branch)
			continue
		}

		rows = append(rows, JoinBuildersWithChange(builders, change.Builds, change.SourceStamp.Branch, change.SourceStamp.Revision, s.buildbotClient.BaseURL())...)
	}

	failedRows := FilterFailed(rows)
	if len(failedRows) == 0 {
		log.Info().Msg("Grab a coffee and enjoy a bug free world!")
		return nil
	}

	csvContent, err := RenderCSV(failedRows)
	if err != nil {
		return err
	}
	htmlBody := RenderHTMLTable(failedRows)

	RenderSummary(failedRows, os.Stdout)

	err = s.mailerClient.SendReport(ctx, htmlBody, []byte(csvContent))
	if err != nil {
		return err
	}

	log.Info().Msgf("Reported %v failed builds", len(failedRows))

	return nil
}

// initJaeger returns an instance of Jaeger Tracer that can be configured with environment variables
// https://github.com/jaegertracing/jaeger-client-go#environment-variables
func (s *service) initJaeger(service string) io.Closer {

	cfg, err := jaegercfg.FromEnv()
	if err != nil {
		log.Fatal().Err(err).Msg("Generating Jaeger config from environment variables failed")
	}

	// disable jaeger if service name is empty
	if cfg.ServiceName == "" {
		cfg.Disabled = true
	}

	closer, err := cfg.InitGlobalTracer(service, jaegercfg.Logger(jaeger.StdLogger))

	if err != nil {
		log.Fatal().Err(err).Msg("Generating Jaeger tracer failed")
	}

	return closer
}
