package password

import (
	"testing"
)

func TestGetHash(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{
			name:     "regular password",
			password: "password123",
			wantErr:  false,
		},
		{
			name:     "password with special chars",
			password: "p@ssw0rd!@#$%^&*()",
			wantErr:  false,
		},
		{
			name:     "long password",
			password: "verylongpasswordwithmorethanfiftycharacters",
			wantErr:  false,
		},
		{
			name:     "short password",
			password: "short",
			wantErr:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotHash, err := GetHash(tt.password)

			if (err != nil) != tt.wantErr {
				t.Errorf("GetHash() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if !tt.wantErr && gotHash == "" {
				t.Error("GetHash() returned empty hash")
			}

			if !tt.wantErr {
				err = CompareHash(gotHash, tt.password)
				if err != nil {
					t.Errorf("CompareHash() failed for valid password: %v", err)
				}
			}
		})
	}
}

func TestCompareHash_WrongPassword(t *testing.T) {
	hash, err := GetHash("correct-password")
	if err != nil {
		t.Fatalf("GetHash() error = %v", err)
	}

	if err := CompareHash(hash, "wrong-password"); err == nil {
		t.Error("CompareHash() accepted wrong password")
	}
}

func TestCompareHash_InvalidHash(t *testing.T) {
	if err := CompareHash("not-a-bcrypt-hash", "password"); err == nil {
		t.Error("CompareHash() accepted invalid hash")
	}
}
