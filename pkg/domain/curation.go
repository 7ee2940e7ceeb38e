package domain

// CurationRequest is sent to the external curation service
type CurationRequest struct {
	Candidates []RawArticle
	Leaning    Leaning
	Frequency  Frequency
	Categories []CategoryPreference
}

// CurationSelection is one article picked by the curation service.
// Index refers to the position in CurationRequest.Candidates and is not guaranteed to be valid.
type CurationSelection struct {
	Index      int    `json:"index"`
	Headline   string `json:"headline"`
	Subtitle   string `json:"subtitle"`
	Summary    string `json:"summary"`
	Importance int    `json:"importance"`
	Category   string `json:"category"`
}

// Curation is the validated curation response
type Curation struct {
	DigestTitle string              `json:"digest_title"`
	Selections  []CurationSelection `json:"articles"`
}
