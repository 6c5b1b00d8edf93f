package application

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var membershipChanges = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "soundwave_playlist_membership_changes_total",
	Help: "Songs added to or removed from playlists.",
}, []string{"op"})
