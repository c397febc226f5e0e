package swid

import "testing"

func TestValidateSoftwareID_Accepts(t *testing.T) {
	ids := []string{
		"strongswan.org__Ubuntu_22.04-x86_64-strongswan-5.9.5",
		"regid.2004-03.org.strongswan__tnc-imcvs",
		"http://strongswan.org__some-tag:1.0+r2",
		"a",
	}
	for _, id := range ids {
		if err := ValidateSoftwareID(id); err != nil {
			t.Errorf("ValidateSoftwareID(%q) = %v, want nil", id, err)
		}
	}
}

func TestValidateSoftwareID_Rejects(t *testing.T) {
	ids := []string{
		"",
		"pkg; rm -rf /",
		"pkg && true",
		"pkg|cat",
		"pkg`id`",
		"pkg$(id)",
		"pkg name",
		"pkg\"quoted\"",
		"pkg\nnewline",
	}
	for _, id := range ids {
		err := ValidateSoftwareID(id)
		if err == nil {
			t.Errorf("ValidateSoftwareID(%q) = nil, want error", id)
			continue
		}
		if StatusOf(err) != StatusFailed {
			t.Errorf("ValidateSoftwareID(%q) status = %s, want FAILED", id, StatusOf(err))
		}
	}
}
