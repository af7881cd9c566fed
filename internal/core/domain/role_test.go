package domain

import "testing"

func userWithRole(role Role) *User {
	return &User{ID: 1, Email: "u@example.com", IsActive: true, RoleName: role}
}

// expectedCapabilities mirrors the product policy independently of the
// lookup table, so a table edit that changes policy fails here.
var expectedCapabilities = map[Role]map[Capability]bool{
	RoleAdmin: {
		CapManageSystem:     true,
		CapSellProducts:     true,
		CapBuyProducts:      true,
		CapManageRestaurant: true,
		CapOrganizeEvents:   true,
	},
	RoleFarmer: {
		CapSellProducts: true,
	},
	RoleConsumer: {
		CapBuyProducts: true,
	},
	RoleRestaurantOwner: {
		CapBuyProducts:      true,
		CapManageRestaurant: true,
	},
	RoleWorkshopHost: {
		CapOrganizeEvents: true,
	},
	RoleEventOrganizer: {
		CapOrganizeEvents: true,
	},
}

func TestRoleCapabilities_Exhaustive(t *testing.T) {
	for _, role := range Roles {
		for _, cap := range Capabilities {
			got := role.Can(cap)
			want := expectedCapabilities[role][cap]
			if got != want {
				t.Errorf("role %s capability %s: got %v, want %v", role, cap, got, want)
			}
		}
	}
}

func TestAdminSubsumesEveryCapability(t *testing.T) {
	admin := userWithRole(RoleAdmin)
	checks := []struct {
		name string
		fn   func(*User) bool
	}{
		{"CanManageSystem", CanManageSystem},
		{"CanSellProducts", CanSellProducts},
		{"CanBuyProducts", CanBuyProducts},
		{"CanManageRestaurant", CanManageRestaurant},
		{"CanOrganizeEvents", CanOrganizeEvents},
	}
	for _, c := range checks {
		if !c.fn(admin) {
			t.Errorf("%s(admin) = false, want true", c.name)
		}
	}
}

func TestFarmerSellsButDoesNotManageRestaurant(t *testing.T) {
	farmer := userWithRole(RoleFarmer)
	if !CanSellProducts(farmer) {
		t.Error("CanSellProducts(farmer) = false, want true")
	}
	if CanManageRestaurant(farmer) {
		t.Error("CanManageRestaurant(farmer) = true, want false")
	}
}

func TestUnknownRoleFailsClosed(t *testing.T) {
	ghost := userWithRole(Role("superuser"))
	if ghost.RoleName.Valid() {
		t.Fatal("unexpected role in the closed set")
	}
	for _, cap := range Capabilities {
		if UserCan(ghost, cap) {
			t.Errorf("UserCan(unknown role, %s) = true, want false", cap)
		}
	}
}

func TestNilUserHasNothing(t *testing.T) {
	if IsAdmin(nil) || IsFarmer(nil) || IsConsumer(nil) || IsRestaurantOwner(nil) {
		t.Error("role predicate true for nil user")
	}
	if HasRole(nil, RoleAdmin) {
		t.Error("HasRole(nil) = true, want false")
	}
	for _, cap := range Capabilities {
		if UserCan(nil, cap) {
			t.Errorf("UserCan(nil, %s) = true, want false", cap)
		}
	}
}

func TestHasAnyRole(t *testing.T) {
	farmer := userWithRole(RoleFarmer)

	tests := []struct {
		name  string
		user  *User
		roles []Role
		want  bool
	}{
		{"member", farmer, []Role{RoleAdmin, RoleFarmer}, true},
		{"not member", farmer, []Role{RoleAdmin, RoleConsumer}, false},
		{"empty set", farmer, []Role{}, false},
		{"nil set", farmer, nil, false},
		{"nil user", nil, []Role{RoleFarmer}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasAnyRole(tt.user, tt.roles); got != tt.want {
				t.Errorf("HasAnyRole = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRoleEqualityPredicates(t *testing.T) {
	for _, role := range Roles {
		u := userWithRole(role)
		if !HasRole(u, role) {
			t.Errorf("HasRole(%s user, %s) = false", role, role)
		}
		if IsAdmin(u) != (role == RoleAdmin) {
			t.Errorf("IsAdmin(%s user) wrong", role)
		}
		if IsWorkshopHost(u) != (role == RoleWorkshopHost) {
			t.Errorf("IsWorkshopHost(%s user) wrong", role)
		}
		if IsEventOrganizer(u) != (role == RoleEventOrganizer) {
			t.Errorf("IsEventOrganizer(%s user) wrong", role)
		}
	}
}
