package buildinfo

import "testing"

func TestNew(t *testing.T) {
	tests := []struct {
		in          string
		wantVersion string
		wantRelease bool
	}{
		{"v1.2.3", "1.2.3", true},
		{"1.2", "1.2.0", true},
		{"v2.0.0-rc.1", "2.0.0-rc.1", false},
		{"dev", "dev", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			info := New(tt.in, "abc123", "2026-01-01")
			if info.Version != tt.wantVersion {
				t.Errorf("Version = %q, want %q", info.Version, tt.wantVersion)
			}
			if info.Release != tt.wantRelease {
				t.Errorf("Release = %v, want %v", info.Release, tt.wantRelease)
			}
			if info.Commit != "abc123" || info.Date != "2026-01-01" {
				t.Errorf("commit/date not preserved: %+v", info)
			}
		})
	}
}

func TestCompareVersions(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"1.0.0", "1.0.1", -1},
		{"v1.0.0", "1.0.0", 0},
		{"2.0.0", "v1.9.9", 1},
	}
	for _, tt := range tests {
		got, err := CompareVersions(tt.a, tt.b)
		if err != nil {
			t.Fatalf("CompareVersions(%q, %q): %v", tt.a, tt.b, err)
		}
		if got != tt.want {
			t.Errorf("CompareVersions(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}

	if _, err := CompareVersions("dev", "1.0.0"); err == nil {
		t.Error("expected error for non-semver input")
	}
}
