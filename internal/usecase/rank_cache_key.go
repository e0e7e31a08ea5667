package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

type rankingCacheKeyInput struct {
	CVID   string   `json:"cv_id"`
	JobIDs []string `json:"job_ids"`
	TopN   int      `json:"top_n"`
}

// RankingCacheKey derives a stable cache key for one ranking request.
// Job ID order is part of the key: ties in the ranking break by input
// order, so a reordered batch is a different result.
func RankingCacheKey(cvID string, jobIDs []string, topN int) string {
	in := rankingCacheKeyInput{CVID: cvID, JobIDs: jobIDs, TopN: topN}
	b, err := json.Marshal(in)
	if err != nil {
		return "ranking:" + cvID + ":unkeyed"
	}
	sum := sha256.Sum256(b)
	return "ranking:" + cvID + ":" + hex.EncodeToString(sum[:])
}
