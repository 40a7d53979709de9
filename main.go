package main

import (
	"context"

	"github.com/alecthomas/kingpin"
	foundation "github.com/estafette/estafette-foundation"
	"github.com/rs/zerolog/log"

	"github.com/failman/failman/clients/buildbot"
	"github.com/failman/failman/clients/mailer"
	"github.com/failman/failman/config"
	"github.com/failman/failman/services/report"
)

var (
	appgroup  string
	app       string
	version   string
	branch    string
	revision  string
	buildDate string
)

var (
	// flags
	subject         = kingpin.Flag("subject", "Subject line of the report email.").Envar("SUBJECT").Required().String()
	sender          = kingpin.Flag("sender", "Email address the report is sent from.").Envar("SENDER").Required().String()
	recipient       = kingpin.Flag("recipient", "Email address the report is sent to.").Envar("RECIPIENT_EMAIL").Required().String()
	configLocation  = kingpin.Flag("config-location", "Path or url of the yaml config listing branches and the optional builder filter.").Envar("CONFIG_URL").Default("config.yaml").String()
	buildbotURL     = kingpin.Flag("buildbot-url", "Base url of the buildbot master.").Envar("BASE_BUILDBOT_URL").Required().String()
	smtpRelayServer = kingpin.Flag("smtp-relay-server", "Hostname of the smtp relay.").Envar("SMTP_RELAY_SERVER").Required().String()
	smtpRelayPort   = kingpin.Flag("smtp-relay-port", "Port of the smtp relay.").Envar("SMTP_RELAY_PORT").Default("465").Int()
)

func main() {

	// parse command line parameters
	kingpin.Parse()

	// init log format from envvar ESTAFETTE_LOG_FORMAT
	applicationInfo := foundation.NewApplicationInfo(appgroup, app, version, branch, revision, buildDate)
	foundation.InitLoggingFromEnv(applicationInfo)

	ctx := context.Background()

	cfg, err := config.Load(ctx, *configLocation)
	if err != nil {
		log.Fatal().Err(err).Msgf("Failed loading config from %v", *configLocation)
	}
	err = cfg.Validate()
	if err != nil {
		log.Fatal().Err(err).Msgf("Config loaded from %v is invalid", *configLocation)
	}

	buildbotClient, err := buildbot.NewClient(*buildbotURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed creating buildbot.Client")
	}

	mailerClient, err := mailer.NewClient(*smtpRelayServer, *smtpRelayPort, *sender, *recipient, *subject)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed creating mailer.Client")
	}

	reportService, err := report.NewService(applicationInfo, cfg, buildbotClient, mailerClient)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed creating report.Service")
	}

	err = reportService.Run(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed generating the failed builds report")
	}
}
