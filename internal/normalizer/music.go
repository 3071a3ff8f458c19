package normalizer

import (
	"github.com/LuckDucapa/spidey-ff-ig/internal/domain"
	"github.com/tidwall/gjson"
)

// ExtractMusic reads the clips music attribution from the record's
// side-channel. Returns nil when the record carries no music info; missing
// artist or song names default to "Unknown".
func ExtractMusic(rec *domain.MediaRecord) *domain.MusicInfo {
	m := gjson.GetBytes(rec.Raw, "clips_music_attribution_info")
	if !m.Exists() || m.Type == gjson.Null {
		return nil
	}

	info := &domain.MusicInfo{
		ArtistName:        "Unknown",
		SongName:          "Unknown",
		UsesOriginalAudio: m.Get("uses_original_audio").Bool(),
	}
	if v := m.Get("artist_name"); v.Type == gjson.String && v.Str != "" {
		info.ArtistName = v.Str
	}
	if v := m.Get("song_name"); v.Type == gjson.String && v.Str != "" {
		info.SongName = v.Str
	}
	if v := m.Get("audio_id"); v.Exists() && v.Type != gjson.Null {
		info.AudioID = v.String()
	}

	return info
}
