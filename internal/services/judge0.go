package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/kybermartin/python-editor/internal/config"
	apperrors "github.com/kybermartin/python-editor/pkg/errors"
	"github.com/kybermartin/python-editor/pkg/logger"
)

// Judge0 CE on RapidAPI, synchronous mode: wait=true makes the service
// execute and return the final result within a single response.
var Judge0URL = "https://judge0-ce.p.rapidapi.com/submissions?base64_encoded=false&wait=true"

const judge0Host = "judge0-ce.p.rapidapi.com"

// languageID 71 selects Python 3 on Judge0 CE. Callers cannot choose a
// language; this backend runs exactly one interpreter.
const languageID = 71

type Judge0SubmissionRequest struct {
	LanguageID int    `json:"language_id"`
	SourceCode string `json:"source_code"`
	Stdin      string `json:"stdin"`
}

var judge0Client = &http.Client{Timeout: 30 * time.Second}

// ExecuteCode submits source text to Judge0 and relays the result body
// untouched. No retries; any upstream or network failure surfaces as a
// server error.
func ExecuteCode(code string) (json.RawMessage, error) {
	if config.AppConfig.Judge0APIKey == "" {
		return nil, apperrors.Internal("Judge0 API key not set (JUDGE0_API_KEY).")
	}

	reqBody := Judge0SubmissionRequest{
		LanguageID: languageID,
		SourceCode: code,
		Stdin:      "",
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest(http.MethodPost, Judge0URL, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-rapidapi-key", config.AppConfig.Judge0APIKey)
	req.Header.Set("x-rapidapi-host", judge0Host)

	start := time.Now()
	resp, err := judge0Client.Do(req)
	if err != nil {
		return nil, apperrors.Internal(fmt.Sprintf("Judge0 request failed: %v", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apperrors.Internal(fmt.Sprintf("Judge0 error: %d", resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.Internal(fmt.Sprintf("Judge0 response read failed: %v", err))
	}

	logger.Info().
		Dur("latency", time.Since(start)).
		Msg("Executed code via Judge0")

	return json.RawMessage(body), nil
}
