package model

import "fmt"

// Format is the output format tag chosen by the user.
type Format string

const (
	FormatMP4 Format = "mp4"
	FormatMP3 Format = "mp3"
)

// ParseFormat maps a raw format tag to a Format. An empty tag defaults to MP4.
func ParseFormat(raw string) (Format, error) {
	switch raw {
	case "", string(FormatMP4):
		return FormatMP4, nil
	case string(FormatMP3):
		return FormatMP3, nil
	default:
		return "", fmt.Errorf("unknown format %q", raw)
	}
}

// Label returns the user-facing name of the format.
func (f Format) Label() string {
	switch f {
	case FormatMP3:
		return "MP3 Audio"
	default:
		return "MP4 Video"
	}
}

// Submission is a single download request: a candidate URL plus the chosen
// output format. It lives only for the duration of one request.
type Submission struct {
	URL    string `json:"url"`
	Format Format `json:"format"`
}

// Reset clears the submission so it can be reused from a pool.
func (s *Submission) Reset() {
	s.URL = ""
	s.Format = ""
}
