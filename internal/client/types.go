package client

import "github.com/MedAliAdlouni/mcq-generator/internal/quiz"

// SaveRequest is the body of POST /api/results/save. DocumentID is null on
// the wire when no document is associated with the session.
type SaveRequest struct {
	DocumentID *string             `json:"document_id"`
	Score      int                 `json:"score"`
	Answers    []quiz.AnswerRecord `json:"answers"`
}

type SaveResponse struct {
	Message       string `json:"message"`
	Score         int    `json:"score"`
	DocumentID    string `json:"document_id"`
	QuizSessionID string `json:"quiz_session_id"`
}

// ResultPoint is one entry of the play-history series, chronological as
// returned by the backend.
type ResultPoint struct {
	PlayedAt string  `json:"played_at"`
	Score    float64 `json:"score"`
}

type GenerateResponse struct {
	Message string `json:"message"`
}

type UploadResponse struct {
	Message    string `json:"message"`
	DocumentID string `json:"document_id"`
	Title      string `json:"title"`
}

type DeleteResponse struct {
	Message string `json:"message"`
}
