package news

import "github.com/umputun/newsdigest/pkg/domain"

// neutralAffinity is returned when either leaning is not on the spectrum
const neutralAffinity = 0.5

// Affinity returns compatibility between reader and source leaning in [0,1].
// Each spectrum step costs the same amount and opposite poles score exactly 0.
func Affinity(reader, source domain.Leaning) float64 {
	ri, si := spectrumIndex(reader), spectrumIndex(source)
	if ri < 0 || si < 0 {
		return neutralAffinity
	}
	step := 1.0 / float64(len(domain.Spectrum)-1)
	distance := ri - si
	if distance < 0 {
		distance = -distance
	}
	return 1 - step*float64(distance)
}

func spectrumIndex(l domain.Leaning) int {
	for i, s := range domain.Spectrum {
		if s == l {
			return i
		}
	}
	return -1
}
