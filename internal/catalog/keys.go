// StreamRush - Video Discovery Services
// Copyright 2026 StreamRush contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sudanva21/StreamRush2.0

package catalog

import (
	"encoding/binary"
	"encoding/hex"
	"math"
	"strconv"
	"time"
)

const (
	videoPrefix   = "video:"
	subPrefix     = "sub:"
	historyPrefix = "history:"
	ratingPrefix  = "rating:"
)

func videoKey(id string) []byte {
	return []byte(videoPrefix + id)
}

// viewerSegment length-prefixes viewerID so that no viewer's key prefix is
// a prefix of another viewer's keys, whatever bytes the IDs contain.
func viewerSegment(viewerID string) string {
	return strconv.Itoa(len(viewerID)) + ":" + viewerID + ":"
}

func subViewerPrefix(viewerID string) []byte {
	return []byte(subPrefix + viewerSegment(viewerID))
}

func subKey(viewerID, uploaderID string) []byte {
	return []byte(subPrefix + viewerSegment(viewerID) + uploaderID)
}

func historyViewerPrefix(viewerID string) []byte {
	return []byte(historyPrefix + viewerSegment(viewerID))
}

// historyKey sorts newest first within a viewer's prefix.
func historyKey(viewerID string, watchedAt time.Time, videoID string) []byte {
	var ts [8]byte
	binary.BigEndian.PutUint64(ts[:], uint64(math.MaxInt64-watchedAt.UnixNano()))
	return []byte(historyPrefix + viewerSegment(viewerID) + hex.EncodeToString(ts[:]) + ":" + videoID)
}

func ratingViewerPrefix(viewerID string) []byte {
	return []byte(ratingPrefix + viewerSegment(viewerID))
}

func ratingKey(viewerID, videoID string) []byte {
	return []byte(ratingPrefix + viewerSegment(viewerID) + videoID)
}
