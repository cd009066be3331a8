package adapters

import "github.com/mesh-intelligence/traits/pkg/trait"

// Built-in trait kinds.
const (
	KindPosition3D   trait.Kind = "transform.position"
	KindPosition2D   trait.Kind = "transform.position2d"
	KindAltitude     trait.Kind = "transform.altitude"
	KindRotation3D   trait.Kind = "transform.rotation"
	KindRotation1D   trait.Kind = "transform.rotation1d"
	KindScale3D      trait.Kind = "transform.scale"
	KindScale1D      trait.Kind = "transform.scale1d"
	KindActive       trait.Kind = "node.active"
	KindPhysics      trait.Kind = "physics.enabled"
	KindHighFidelity trait.Kind = "physics.high_fidelity"
	KindCollider     trait.Kind = "physics.collider"
)

// Identifiers are part of the persisted snapshot format. Do not change them.
func init() {
	trait.MustDeclare(KindPosition3D, "Position", "07423ca6-9262-4d23-891f-b7a057e11f36", "World position of the object")
	trait.MustDeclare(KindPosition2D, "Position2D", "63a2dffd-3434-4515-9fc9-67d7911860f1", "Position on the ground plane (x, z)")
	trait.MustDeclare(KindAltitude, "Altitude", "969d012c-539e-40d1-80ef-b995f49fdff0", "Height above the ground plane")
	trait.MustDeclare(KindRotation3D, "Rotation", "1e8f5350-fa75-49a4-872f-8d31b1f6817a", "Euler rotation in degrees")
	trait.MustDeclare(KindRotation1D, "Rotation1D", "7a795e14-2746-46d0-a653-ea455a00eece", "Rotation about the object's facing axis in degrees")
	trait.MustDeclare(KindScale3D, "Scale", "c5081bf7-bad1-4490-b3b4-d6bd77c4972d", "Per-axis scale")
	trait.MustDeclare(KindScale1D, "UniformScale", "ea70ca19-bcbe-40e6-8b04-020dfe60471c", "Uniform scale (magnitude of the scale vector)")
	trait.MustDeclare(KindActive, "Active", "b88aecd0-b0c8-4cb7-90e0-57f92c84345a", "Whether the object is shown and simulated")
	trait.MustDeclare(KindPhysics, "Physics", "ea687117-1933-4301-b902-64706263f445", "Whether the object is driven by physics")
	trait.MustDeclare(KindHighFidelity, "HighFidelityPhysics", "699bd4b6-a935-498f-9d33-bae8e68a959a", "Continuous collision detection for fast objects")
	trait.MustDeclare(KindCollider, "Collider", "5eb0c680-8101-4f08-bf07-1f2b91f94713", "Collision shape generated for each part")
}
