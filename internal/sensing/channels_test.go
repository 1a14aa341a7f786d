package sensing

import "testing"

func TestDefaultChannelsHaveValidRanges(t *testing.T) {
	for _, c := range DefaultChannels() {
		if c.Slug == "" {
			t.Errorf("channel with empty slug: %+v", c)
		}
		if c.Min > c.Max {
			t.Errorf("channel %s has Min %v > Max %v", c.Slug, c.Min, c.Max)
		}
	}
}

func TestDefaultChannelsCoverCoreSnapshotFields(t *testing.T) {
	want := map[string]bool{"TPS": false, "VSS": false, "RPME": false, "RPMO": false, "TEMP": false}
	for _, c := range DefaultChannels() {
		if _, ok := want[c.Slug]; ok {
			want[c.Slug] = true
		}
	}
	for slug, seen := range want {
		if !seen {
			t.Errorf("expected DefaultChannels to include %s", slug)
		}
	}
}
