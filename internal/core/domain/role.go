package domain

// Role is the account's role tag. The set is closed; tags outside it carry
// no capabilities.
type Role string

const (
	RoleAdmin           Role = "admin"
	RoleFarmer          Role = "farmer"
	RoleConsumer        Role = "consumer"
	RoleRestaurantOwner Role = "restaurant_owner"
	RoleWorkshopHost    Role = "workshop_host"
	RoleEventOrganizer  Role = "event_organizer"
)

// Roles lists every known role tag.
var Roles = []Role{
	RoleAdmin,
	RoleFarmer,
	RoleConsumer,
	RoleRestaurantOwner,
	RoleWorkshopHost,
	RoleEventOrganizer,
}

// Capability is a named permission derived from the role tag.
type Capability string

const (
	CapManageSystem     Capability = "manage_system"
	CapSellProducts     Capability = "sell_products"
	CapBuyProducts      Capability = "buy_products"
	CapManageRestaurant Capability = "manage_restaurant"
	CapOrganizeEvents   Capability = "organize_events"
)

// Capabilities lists every known capability.
var Capabilities = []Capability{
	CapManageSystem,
	CapSellProducts,
	CapBuyProducts,
	CapManageRestaurant,
	CapOrganizeEvents,
}

// roleCapabilities encodes the product's access-control policy. Adding a
// role or capability is a one-line table edit. Admin holds every
// capability.
var roleCapabilities = map[Role][]Capability{
	RoleAdmin:           {CapManageSystem, CapSellProducts, CapBuyProducts, CapManageRestaurant, CapOrganizeEvents},
	RoleFarmer:          {CapSellProducts},
	RoleConsumer:        {CapBuyProducts},
	RoleRestaurantOwner: {CapBuyProducts, CapManageRestaurant},
	RoleWorkshopHost:    {CapOrganizeEvents},
	RoleEventOrganizer:  {CapOrganizeEvents},
}

// Valid reports whether r belongs to the closed role set.
func (r Role) Valid() bool {
	_, ok := roleCapabilities[r]
	return ok
}

// Can reports whether the role grants the capability. Unknown roles grant
// nothing.
func (r Role) Can(cap Capability) bool {
	for _, c := range roleCapabilities[r] {
		if c == cap {
			return true
		}
	}
	return false
}

// HasRole reports whether the user carries exactly the given role tag.
// A nil user has no role.
func HasRole(u *User, role Role) bool {
	return u != nil && u.RoleName == role
}

// HasAnyRole reports whether the user's role is a member of the given set.
// Empty sets match nothing.
func HasAnyRole(u *User, roles []Role) bool {
	if u == nil {
		return false
	}
	for _, r := range roles {
		if u.RoleName == r {
			return true
		}
	}
	return false
}

func IsAdmin(u *User) bool           { return HasRole(u, RoleAdmin) }
func IsFarmer(u *User) bool          { return HasRole(u, RoleFarmer) }
func IsConsumer(u *User) bool        { return HasRole(u, RoleConsumer) }
func IsRestaurantOwner(u *User) bool { return HasRole(u, RoleRestaurantOwner) }
func IsWorkshopHost(u *User) bool    { return HasRole(u, RoleWorkshopHost) }
func IsEventOrganizer(u *User) bool  { return HasRole(u, RoleEventOrganizer) }

// UserCan reports whether the user's role grants the capability.
// Nil users and unknown role tags grant nothing.
func UserCan(u *User, cap Capability) bool {
	return u != nil && u.RoleName.Can(cap)
}

// Capability predicates mirrored from the product's access policy.
func CanManageSystem(u *User) bool     { return UserCan(u, CapManageSystem) }
func CanSellProducts(u *User) bool     { return UserCan(u, CapSellProducts) }
func CanBuyProducts(u *User) bool      { return UserCan(u, CapBuyProducts) }
func CanManageRestaurant(u *User) bool { return UserCan(u, CapManageRestaurant) }
func CanOrganizeEvents(u *User) bool   { return UserCan(u, CapOrganizeEvents) }
