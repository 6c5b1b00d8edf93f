package application

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var songPlaysTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "soundwave_song_plays_total",
	Help: "Total number of recorded song plays.",
})
