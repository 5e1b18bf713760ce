package session

import (
	"testing"

	"jobboard/internal/authz"
)

func adminRecord(email string) Record {
	return Record{Role: string(authz.RoleAdmin), Email: email, Token: "tok-a"}
}

func employerRecord(uid string) Record {
	return Record{Role: string(authz.RoleEmployer), UID: uid, Email: uid + "@acme.test", Token: "tok-e", CompanyName: "Acme"}
}

func TestPutEvictsOtherRole(t *testing.T) {
	store, err := NewStore(NewMemKV())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	if err := store.Put(employerRecord("emp-1")); err != nil {
		t.Fatalf("put employer: %v", err)
	}
	if err := store.Put(adminRecord("admin@site.test")); err != nil {
		t.Fatalf("put admin: %v", err)
	}

	if _, ok, _ := store.Get(string(authz.RoleEmployer)); ok {
		t.Errorf("employer record should be evicted by admin sign-in")
	}
	rec, ok, err := store.Get(string(authz.RoleAdmin))
	if err != nil || !ok {
		t.Fatalf("admin record missing: ok=%v err=%v", ok, err)
	}
	if rec.Email != "admin@site.test" {
		t.Errorf("unexpected admin email %q", rec.Email)
	}
}

func TestPutRejectsInvalidRecord(t *testing.T) {
	store, err := NewStore(NewMemKV())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	cases := []Record{
		{Role: "superuser", Email: "x@y.test"},
		{Role: string(authz.RoleAdmin)},
		{Role: string(authz.RoleEmployer), Email: "no-uid@y.test"},
	}
	for _, rec := range cases {
		if err := store.Put(rec); err == nil {
			t.Errorf("expected error for record %+v", rec)
		}
	}
}

func TestFileKVSurvivesReopen(t *testing.T) {
	dir := t.TempDir()

	kv, err := NewFileKV(dir)
	if err != nil {
		t.Fatalf("NewFileKV: %v", err)
	}
	store, err := NewStore(kv)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	if err := store.Put(employerRecord("emp-7")); err != nil {
		t.Fatalf("put: %v", err)
	}

	kv2, err := NewFileKV(dir)
	if err != nil {
		t.Fatalf("reopen kv: %v", err)
	}
	store2, err := NewStore(kv2)
	if err != nil {
		t.Fatalf("reopen store: %v", err)
	}
	rec, ok, err := store2.Get(string(authz.RoleEmployer))
	if err != nil || !ok {
		t.Fatalf("record lost across reopen: ok=%v err=%v", ok, err)
	}
	if rec.UID != "emp-7" || rec.CompanyName != "Acme" {
		t.Errorf("record fields lost across reopen: %+v", rec)
	}
}

func TestSubscribeFiresOnExternalChangeOnly(t *testing.T) {
	kv := NewMemKV()
	store, err := NewStore(kv)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	fired := 0
	cancel := store.Subscribe(func() { fired++ })
	defer cancel()

	// Own writes must not notify, even after a Sync.
	if err := store.Put(adminRecord("admin@site.test")); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := store.Sync(); err != nil {
		t.Fatalf("sync: %v", err)
	}
	if fired != 0 {
		t.Fatalf("own write fired subscriber %d times", fired)
	}

	// A write that bypasses the store models another process.
	raw, _ := employerRecord("emp-2").encode()
	if err := kv.Put(keyEmployer, raw); err != nil {
		t.Fatalf("external put: %v", err)
	}
	if err := kv.Delete(keyAdmin); err != nil {
		t.Fatalf("external delete: %v", err)
	}
	if err := store.Sync(); err != nil {
		t.Fatalf("sync: %v", err)
	}
	if fired != 1 {
		t.Fatalf("external change fired subscriber %d times, want 1", fired)
	}

	// Unchanged storage stays quiet.
	if err := store.Sync(); err != nil {
		t.Fatalf("sync: %v", err)
	}
	if fired != 1 {
		t.Errorf("sync with no change fired subscriber")
	}

	cancel()
	if err := kv.Delete(keyEmployer); err != nil {
		t.Fatalf("external delete: %v", err)
	}
	if err := store.Sync(); err != nil {
		t.Fatalf("sync: %v", err)
	}
	if fired != 1 {
		t.Errorf("cancelled subscriber still fired")
	}
}

func TestResolveAdminWins(t *testing.T) {
	kv := NewMemKV()
	store, err := NewStore(kv)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	id, err := store.Resolve()
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if id.Role != authz.RoleNone {
		t.Errorf("empty storage resolved to %q", id.Role)
	}

	// Plant both records directly; Put would evict one.
	adminRaw, _ := adminRecord("admin@site.test").encode()
	employerRaw, _ := employerRecord("emp-3").encode()
	if err := kv.Put(keyAdmin, adminRaw); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := kv.Put(keyEmployer, employerRaw); err != nil {
		t.Fatalf("put: %v", err)
	}

	id, err = store.Resolve()
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if id.Role != authz.RoleAdmin {
		t.Errorf("resolve with both records = %q, want admin", id.Role)
	}
	if id.Record.Email != "admin@site.test" {
		t.Errorf("resolve returned wrong record: %+v", id.Record)
	}

	if err := kv.Delete(keyAdmin); err != nil {
		t.Fatalf("delete: %v", err)
	}
	id, err = store.Resolve()
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if id.Role != authz.RoleEmployer || id.Record.UID != "emp-3" {
		t.Errorf("resolve after admin logout = %+v", id)
	}
}

func TestClear(t *testing.T) {
	store, err := NewStore(NewMemKV())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	if err := store.Put(adminRecord("a@b.test")); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	id, err := store.Resolve()
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if id.Role != authz.RoleNone {
		t.Errorf("resolve after clear = %q", id.Role)
	}
}
