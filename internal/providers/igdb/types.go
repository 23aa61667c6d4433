package igdb

import (
	"bytes"
	"encoding/json"
)

const upstreamName = "igdb"

type gameResponse struct {
	ID               int64            `json:"id"`
	Name             string           `json:"name"`
	Cover            coverRef         `json:"cover"`
	FirstReleaseDate int64            `json:"first_release_date"`
	Summary          string           `json:"summary"`
	SimilarGames     []similarGameRef `json:"similar_games"`
	Videos           []videoRef       `json:"videos"`
}

// coverRef accepts either an expanded {"url": ...} object or a bare id,
// which the catalog returns when the projection was not expanded.
type coverRef struct {
	URL string
}

func (c *coverRef) UnmarshalJSON(data []byte) error {
	if isNumberOrNull(data) {
		*c = coverRef{}
		return nil
	}
	var obj struct {
		URL string `json:"url"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	c.URL = obj.URL
	return nil
}

// similarGameRef accepts an expanded object or a bare id. Bare ids carry no
// name and are dropped by the mapper.
type similarGameRef struct {
	ID    int64
	Name  string
	Cover coverRef
}

func (s *similarGameRef) UnmarshalJSON(data []byte) error {
	if isNumberOrNull(data) {
		var id int64
		if !bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
			if err := json.Unmarshal(data, &id); err != nil {
				return err
			}
		}
		*s = similarGameRef{ID: id}
		return nil
	}
	var obj struct {
		ID    int64    `json:"id"`
		Name  string   `json:"name"`
		Cover coverRef `json:"cover"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	*s = similarGameRef{ID: obj.ID, Name: obj.Name, Cover: obj.Cover}
	return nil
}

type videoRef struct {
	VideoID string
	Name    string
}

func (v *videoRef) UnmarshalJSON(data []byte) error {
	if isNumberOrNull(data) {
		*v = videoRef{}
		return nil
	}
	var obj struct {
		VideoID string `json:"video_id"`
		Name    string `json:"name"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	*v = videoRef{VideoID: obj.VideoID, Name: obj.Name}
	return nil
}

func isNumberOrNull(data []byte) bool {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return true
	}
	switch trimmed[0] {
	case '{', '[', '"':
		return false
	default:
		return true
	}
}
