package main

import "time"

type Config struct {
	BadgerFilepath  string        `env:"BADGER_FILEPATH,required=true"`
	LogLevel        string        `env:"LOG_LEVEL,required=true" validate:"oneof=debug info warn error"`
	MinSendInterval time.Duration `env:"MIN_SEND_INTERVAL,default=700ms" validate:"gt=0"`
	ReportReasonMax int           `env:"REPORT_REASON_MAX,default=1000" validate:"gt=0"`
	StatsInterval   time.Duration `env:"STATS_INTERVAL,default=1m" validate:"gt=0"`
	RestartInterval time.Duration `env:"RESTART_INTERVAL,default=200ms" validate:"gt=0"`
	BufferSize      int           `env:"BUFFER_SIZE,default=128" validate:"gt=0"`
	// OperatorID enables report forwarding when set; reports are stored
	// either way.
	OperatorID string `env:"OPERATOR_ID"`
}
